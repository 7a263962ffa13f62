package ui

import "algocat/internal/domain"

// Viewer displays a run report interactively
type Viewer interface {
	View(report *domain.Report) error
}
