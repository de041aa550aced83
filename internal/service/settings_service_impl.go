package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/repository"
)

// Defaults used when a well-known setting has never been written.
const (
	defaultOverdueWarningDays = 3
	defaultLagThresholdPct    = 10
)

// wellKnownSettings pins the declared type of the keys the engine consumes.
// Unknown keys are stored as plain strings.
var wellKnownSettings = map[string]domain.SettingType{
	domain.SettingSkipWeekends:       domain.SettingBoolean,
	domain.SettingOverdueWarningDays: domain.SettingNumber,
	domain.SettingProgressLagPercent: domain.SettingNumber,
}

type settingsService struct {
	settings repository.SettingRepo
}

func NewSettingsService(settings repository.SettingRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context, key string) (*domain.Setting, error) {
	return s.settings.Get(ctx, key)
}

func (s *settingsService) List(ctx context.Context) ([]*domain.Setting, error) {
	return s.settings.List(ctx)
}

func (s *settingsService) Set(ctx context.Context, key, rawValue string) error {
	settingType, ok := wellKnownSettings[key]
	if !ok {
		settingType = domain.SettingText
	}

	switch settingType {
	case domain.SettingNumber:
		if _, err := strconv.ParseFloat(rawValue, 64); err != nil {
			return fmt.Errorf("setting %s expects a number, got %q", key, rawValue)
		}
	case domain.SettingBoolean:
		switch strings.ToLower(rawValue) {
		case "true", "false", "1", "0", "yes", "no":
		default:
			return fmt.Errorf("setting %s expects a boolean, got %q", key, rawValue)
		}
	}

	return s.settings.Upsert(ctx, &domain.Setting{
		Key:       key,
		RawValue:  rawValue,
		Type:      settingType,
		UpdatedAt: time.Now().UTC(),
	})
}

func (s *settingsService) ProgressConfig(ctx context.Context) (overdueWarningDays, lagThresholdPct int) {
	overdueWarningDays = defaultOverdueWarningDays
	lagThresholdPct = defaultLagThresholdPct

	if setting, err := s.settings.Get(ctx, domain.SettingOverdueWarningDays); err == nil {
		if v := setting.Resolve().Int(); v > 0 {
			overdueWarningDays = v
		}
	}
	if setting, err := s.settings.Get(ctx, domain.SettingProgressLagPercent); err == nil {
		if v := setting.Resolve().Int(); v > 0 {
			lagThresholdPct = v
		}
	}
	return overdueWarningDays, lagThresholdPct
}
