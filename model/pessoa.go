package model

type Pessoa struct {
	Model
	Nome  string `gorm:"type:varchar(100);not null" json:"nome"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	// PasswordHash holds the raw credential as received.
	// TODO: hash with bcrypt before storing.
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	RecadosEnviados  []Recado `gorm:"foreignKey:DeID" json:"-"`
	RecadosRecebidos []Recado `gorm:"foreignKey:ParaID" json:"-"`
}
