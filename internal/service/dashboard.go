package service

import "github.com/quotedesk/quotedesk/internal/domain"

type DashboardService interface {
	Stats() (domain.Stats, error)
}

type Dashboard struct {
	storage StatsStorage
}

type StatsStorage interface {
	QuotationCount() (int64, error)
	QuotationCountByStatus(status domain.Status) (int64, error)
}

func NewDashboard(storage StatsStorage) *Dashboard {
	return &Dashboard{storage}
}

// Stats computes the four dashboard counts at call time. Each count is
// its own query; there is no snapshot guarantee across them.
func (d *Dashboard) Stats() (domain.Stats, error) {
	var stats domain.Stats
	var err error

	if stats.Total, err = d.storage.QuotationCount(); err != nil {
		return domain.Stats{}, err
	}
	if stats.Pending, err = d.storage.QuotationCountByStatus(domain.StatusPending); err != nil {
		return domain.Stats{}, err
	}
	if stats.Approved, err = d.storage.QuotationCountByStatus(domain.StatusApproved); err != nil {
		return domain.Stats{}, err
	}
	if stats.Rejected, err = d.storage.QuotationCountByStatus(domain.StatusRejected); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}
