package models

type Book struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Title    string `gorm:"type:varchar(150);not null"`
	Year     int    `gorm:"not null"`
	AuthorID uint   `gorm:"not null;index"`
}
