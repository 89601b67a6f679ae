package database

// BookRecord is the row shape of the books relation.
type BookRecord struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Title         string `gorm:"not null"`
	Author        *string
	Description   *string
	PublishedYear *int
}

func (BookRecord) TableName() string {
	return "books"
}
