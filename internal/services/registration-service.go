package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/rafif143/basket/internal/domain"
	"github.com/rafif143/basket/internal/dto"
	"github.com/rafif143/basket/internal/interfaces"
	"github.com/rafif143/basket/internal/repository"
	"github.com/rafif143/basket/pkg/whatsapp"
)

// ErrInvalidPairing rejects a fakultas/program studi combination before it
// reaches the store.
var ErrInvalidPairing = errors.New("program studi tidak sesuai dengan fakultas")

// ErrRegistrationNotFound maps to a 404 at the handler.
var ErrRegistrationNotFound = errors.New("pendaftaran tidak ditemukan")

type RegistrationService interface {
	Submit(input dto.RegistrationRequest) (*domain.Registration, error)
	List(search, fakultas string) (*dto.RegistrationListResponse, error)
	Detail(id uint) (*domain.Registration, error)
	ContactLink(id uint) (string, error)
	Report() (*dto.RegistrationReport, error)
}

type registrationService struct {
	repo     repository.RegistrationRepository
	settings SettingsService
	producer interfaces.ProducerHandler
}

func NewRegistrationService(
	repo repository.RegistrationRepository,
	settings SettingsService,
	producer interfaces.ProducerHandler,
) RegistrationService {
	return &registrationService{
		repo:     repo,
		settings: settings,
		producer: producer,
	}
}

func (s *registrationService) Submit(input dto.RegistrationRequest) (*domain.Registration, error) {
	if !domain.ValidFakultas(input.Fakultas) {
		return nil, ErrInvalidPairing
	}
	if !domain.ValidPairing(input.Fakultas, input.ProgramStudi) {
		return nil, ErrInvalidPairing
	}

	reg := &domain.Registration{
		Nama:            strings.TrimSpace(input.Nama),
		NIM:             strings.TrimSpace(input.NIM),
		NoTelepon:       strings.TrimSpace(input.NoTelepon),
		FotoKtmURL:      input.FotoKtmURL,
		AlamatDomisili:  strings.TrimSpace(input.AlamatDomisili),
		Fakultas:        input.Fakultas,
		ProgramStudi:    input.ProgramStudi,
		AlasanBergabung: input.AlasanBergabung,
	}

	created, err := s.repo.CreateRegistration(reg)
	if err != nil {
		return nil, err
	}

	s.publishCreated(created)

	return created, nil
}

// publishCreated is best effort: a broker failure must not fail the
// registration that triggered it.
func (s *registrationService) publishCreated(reg *domain.Registration) {
	if s.producer == nil {
		return
	}

	event := dto.RegistrationCreatedEvent{
		RegistrationID: reg.ID,
		Nama:           reg.Nama,
		NIM:            reg.NIM,
		NoTelepon:      reg.NoTelepon,
		Fakultas:       reg.Fakultas,
		ProgramStudi:   reg.ProgramStudi,
		CreatedAt:      reg.CreatedAt.Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal registration event error: %v", err)
		return
	}

	if err := s.producer.PublishMessage([]byte(fmt.Sprintf("%d", reg.ID)), payload); err != nil {
		log.Printf("publish registration event error: %v", err)
	}
}

// List fetches every registration (newest first) and then filters in memory:
// a case-insensitive substring match on nama/NIM plus an exact fakultas
// filter ("" or "all" disables it).
func (s *registrationService) List(search, fakultas string) (*dto.RegistrationListResponse, error) {
	regs, err := s.repo.ListAllRegistrations()
	if err != nil {
		return nil, err
	}

	template := s.settings.WhatsAppTemplate()

	needle := strings.ToLower(strings.TrimSpace(search))
	filterFakultas := fakultas != "" && fakultas != "all"

	items := make([]dto.RegistrationListItem, 0, len(regs))
	for _, reg := range regs {
		if needle != "" &&
			!strings.Contains(strings.ToLower(reg.Nama), needle) &&
			!strings.Contains(strings.ToLower(reg.NIM), needle) {
			continue
		}
		if filterFakultas && reg.Fakultas != fakultas {
			continue
		}

		items = append(items, dto.RegistrationListItem{
			ID:               reg.ID,
			Nama:             reg.Nama,
			NIM:              reg.NIM,
			NoTelepon:        reg.NoTelepon,
			Fakultas:         reg.Fakultas,
			FakultasName:     domain.FakultasName(reg.Fakultas),
			ProgramStudi:     reg.ProgramStudi,
			ProgramStudiName: domain.ProgramStudiName(reg.ProgramStudi),
			WhatsAppURL:      whatsappLink(reg, template),
			CreatedAt:        reg.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dto.RegistrationListResponse{
		Total:    len(regs),
		Filtered: len(items),
		Items:    items,
	}, nil
}

func (s *registrationService) Detail(id uint) (*domain.Registration, error) {
	reg, err := s.repo.FindRegistrationByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) ContactLink(id uint) (string, error) {
	reg, err := s.Detail(id)
	if err != nil {
		return "", err
	}
	return whatsappLink(*reg, s.settings.WhatsAppTemplate()), nil
}

func whatsappLink(reg domain.Registration, template string) string {
	return whatsapp.BuildLink(reg.NoTelepon, reg.Nama, template)
}

func (s *registrationService) Report() (*dto.RegistrationReport, error) {
	regs, err := s.repo.ListAllRegistrations()
	if err != nil {
		return nil, err
	}

	report := &dto.RegistrationReport{
		TotalRegistrations: len(regs),
	}

	type bucket struct {
		key   string
		label string
		count int
	}
	buckets := map[string]*bucket{}

	for _, reg := range regs {
		switch reg.Fakultas {
		case domain.FakultasFTI:
			report.FTICount++
		case domain.FakultasFHB:
			report.FHBCount++
		}

		key := reg.CreatedAt.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key, label: monthLabel(reg.CreatedAt)}
			buckets[key] = b
		}
		b.count++
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].key < ordered[j].key })

	report.Monthly = make([]dto.MonthlyCount, 0, len(ordered))
	for _, b := range ordered {
		report.Monthly = append(report.Monthly, dto.MonthlyCount{Month: b.label, Count: b.count})
	}

	return report, nil
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", indonesianMonths[t.Month()-1], t.Year())
}
