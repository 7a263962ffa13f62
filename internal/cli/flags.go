package cli

import "algocat/internal/config"

// Flags holds command-line flags
type Flags struct {
	Processors int
	NameFilter string
	FailFast   bool
	OnlyFailed bool
	Format     string
	Text       bool
	History    bool
	OpenFaills bool
	TestCases  bool
	Limit      int
	LogLevel   string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors: f.Processors,
		NameFilter: f.NameFilter,
		FailFast:   f.FailFast,
		OnlyFailed: f.OnlyFailed,
		Format:     f.Format,
		Text:       f.Text,
		History:    f.History,
		OpenFaills: f.OpenFaills,
		TestCases:  f.TestCases,
		Limit:      f.Limit,
	}
}
