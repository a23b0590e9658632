package services

import (
	"math"

	"mybricks/internal/storage"
)

// StorageUsage is the dashboard quota readout: everything in the blob
// store summed up against the configured quota.
type StorageUsage struct {
	UsedBytes int64
	UsedMB    float64
	QuotaGB   int
	Percent   float64
}

type StorageService struct {
	store   storage.Store
	quotaGB int
}

func NewStorageService(store storage.Store, quotaGB int) *StorageService {
	if quotaGB <= 0 {
		quotaGB = 1
	}
	return &StorageService{store: store, quotaGB: quotaGB}
}

func (s *StorageService) Usage() (*StorageUsage, error) {
	used, err := s.store.Usage()
	if err != nil {
		return nil, err
	}

	usedMB := float64(used) / (1024 * 1024)
	percent := usedMB / (float64(s.quotaGB) * 1024) * 100

	return &StorageUsage{
		UsedBytes: used,
		UsedMB:    math.Round(usedMB*100) / 100,
		QuotaGB:   s.quotaGB,
		Percent:   math.Min(percent, 100),
	}, nil
}
