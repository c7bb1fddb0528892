package dto

type RegistrationRequest struct {
	Nama            string `json:"nama" validate:"required"`
	NIM             string `json:"nim" validate:"required"`
	NoTelepon       string `json:"no_telepon" validate:"required"`
	FotoKtmURL      string `json:"foto_ktm_url"`
	AlamatDomisili  string `json:"alamat_domisili" validate:"required"`
	Fakultas        string `json:"fakultas" validate:"required,oneof=FTI FHB"`
	ProgramStudi    string `json:"program_studi" validate:"required,oneof=STI SI AK MN HB"`
	AlasanBergabung string `json:"alasan_bergabung" validate:"required"`
}

type RegistrationListItem struct {
	ID               uint   `json:"id"`
	Nama             string `json:"nama"`
	NIM              string `json:"nim"`
	NoTelepon        string `json:"no_telepon"`
	Fakultas         string `json:"fakultas"`
	FakultasName     string `json:"fakultas_name"`
	ProgramStudi     string `json:"program_studi"`
	ProgramStudiName string `json:"program_studi_name"`
	WhatsAppURL      string `json:"whatsapp_url"`
	CreatedAt        string `json:"created_at"`
}

type RegistrationListResponse struct {
	Total    int                    `json:"total"`
	Filtered int                    `json:"filtered"`
	Items    []RegistrationListItem `json:"items"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type RegistrationReport struct {
	TotalRegistrations int            `json:"total_registrations"`
	FTICount           int            `json:"fti_count"`
	FHBCount           int            `json:"fhb_count"`
	Monthly            []MonthlyCount `json:"monthly"`
}
