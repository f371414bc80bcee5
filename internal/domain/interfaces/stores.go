package interfaces

import domaintypes "pqmudh/internal/domain/types"

// ReportStore persists benchmark reports.
type ReportStore interface {
	SaveReport(report domaintypes.Report) error
}
