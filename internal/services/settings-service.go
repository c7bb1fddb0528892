package services

import (
	"errors"

	"github.com/rafif143/basket/internal/domain"
	"github.com/rafif143/basket/internal/repository"
	"github.com/rafif143/basket/pkg/whatsapp"
)

// ErrUnknownSettingKey rejects writes to keys outside the known set.
var ErrUnknownSettingKey = errors.New("unknown setting key")

const templateDescription = "Template pesan WhatsApp untuk notifikasi pendaftaran"

type SettingsService interface {
	// WhatsAppTemplate never fails: an absent or unreachable setting
	// resolves to the built-in default template.
	WhatsAppTemplate() string
	WhatsAppTemplateWithSource() (template string, isDefault bool)
	UpdateWhatsAppTemplate(template string) (*domain.Setting, error)

	Get(key domain.SettingKey) (*domain.Setting, error)
	Upsert(key domain.SettingKey, value string, description *string) (*domain.Setting, error)
	ListAll() ([]domain.Setting, error)
}

type settingsService struct {
	repo repository.SettingRepository
}

func NewSettingsService(repo repository.SettingRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) WhatsAppTemplate() string {
	template, _ := s.WhatsAppTemplateWithSource()
	return template
}

func (s *settingsService) WhatsAppTemplateWithSource() (string, bool) {
	setting, err := s.repo.GetSetting(domain.SettingWhatsAppTemplate.String())
	if err != nil || setting.Value == "" {
		return whatsapp.DefaultTemplate, true
	}
	return setting.Value, false
}

func (s *settingsService) UpdateWhatsAppTemplate(template string) (*domain.Setting, error) {
	desc := templateDescription
	return s.Upsert(domain.SettingWhatsAppTemplate, template, &desc)
}

func (s *settingsService) Get(key domain.SettingKey) (*domain.Setting, error) {
	if !key.Valid() {
		return nil, ErrUnknownSettingKey
	}
	return s.repo.GetSetting(key.String())
}

func (s *settingsService) Upsert(key domain.SettingKey, value string, description *string) (*domain.Setting, error) {
	if !key.Valid() {
		return nil, ErrUnknownSettingKey
	}
	return s.repo.UpsertSetting(key.String(), value, description)
}

func (s *settingsService) ListAll() ([]domain.Setting, error) {
	return s.repo.ListAllSettings()
}
