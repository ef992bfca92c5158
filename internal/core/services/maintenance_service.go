package services

import (
	"context"
	"log"
	"time"

	"nitp-innovhub/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// Revoked refresh tokens are kept for a grace window before purging,
// unresolved inquiries are auto-closed after a quarter.
const (
	revokedTokenRetention = 30 * 24 * time.Hour
	staleInquiryAge       = 90 * 24 * time.Hour
)

// MaintenanceService runs scheduled housekeeping jobs
type MaintenanceService struct {
	tokenRepo   repositories.RefreshTokenRepository
	inquiryRepo *repositories.InquiryRepository
	cron        *cron.Cron
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	tokenRepo repositories.RefreshTokenRepository,
	inquiryRepo *repositories.InquiryRepository,
) *MaintenanceService {
	return &MaintenanceService{
		tokenRepo:   tokenRepo,
		inquiryRepo: inquiryRepo,
		cron:        cron.New(),
	}
}

// Start registers and launches the scheduled jobs
func (s *MaintenanceService) Start() {
	// Purge stale refresh tokens daily at 03:00
	s.cron.AddFunc("0 3 * * *", s.purgeStaleTokens)

	// Auto-resolve abandoned inquiries weekly, Sunday 04:00
	s.cron.AddFunc("0 4 * * 0", s.resolveStaleInquiries)

	s.cron.Start()
	log.Println("🚀 MaintenanceService started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *MaintenanceService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 MaintenanceService stopped")
}

func (s *MaintenanceService) purgeStaleTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-revokedTokenRetention)
	count, err := s.tokenRepo.DeleteStale(ctx, cutoff)
	if err != nil {
		log.Printf("⚠️ Token purge failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Purged %d stale refresh tokens", count)
	}
}

func (s *MaintenanceService) resolveStaleInquiries() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-staleInquiryAge)
	count, err := s.inquiryRepo.ResolveOlderThan(ctx, cutoff)
	if err != nil {
		log.Printf("⚠️ Inquiry auto-resolve failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Auto-resolved %d stale inquiries", count)
	}
}
