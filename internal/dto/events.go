package dto

type RegistrationCreatedEvent struct {
	RegistrationID uint   `json:"registration_id"`
	Nama           string `json:"nama"`
	NIM            string `json:"nim"`
	NoTelepon      string `json:"no_telepon"`
	Fakultas       string `json:"fakultas"`
	ProgramStudi   string `json:"program_studi"`
	CreatedAt      string `json:"created_at"`
}
