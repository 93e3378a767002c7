package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID                 string     `db:"id"`
	Code               string     `db:"product_id"`
	Name               string     `db:"name"`
	Description        string     `db:"description"`
	PriceCents         int64      `db:"price_cents"`
	OriginalPriceCents *int64     `db:"original_price_cents"`
	Category           string     `db:"category"`
	Images             []string   `db:"images"`
	MainImageIndex     int        `db:"main_image_index"`
	Discount           int        `db:"discount"`
	IsNew              bool       `db:"is_new"`
	InStock            bool       `db:"in_stock"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Image     *string    `db:"image"`
	Count     int64      `db:"count"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// InquiryModel представляет запись таблицы inquiries в PostgreSQL.
type InquiryModel struct {
	ID            string     `db:"id"`
	ProductDbID   string     `db:"product_db_id"`
	ProductCode   string     `db:"product_code"`
	ProductName   string     `db:"product_name"`
	CustomerEmail string     `db:"customer_email"`
	CustomerPhone string     `db:"customer_phone"`
	Status        string     `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

// ContactModel представляет запись таблицы contacts в PostgreSQL.
type ContactModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// AdminModel представляет запись таблицы admins в PostgreSQL.
type AdminModel struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
