package domain

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

// Product описывает товар каталога.
// Code — человекочитаемый артикул (FUR-...), неизменяемый после создания.
// PriceCents и OriginalPriceCents хранятся в центах.
type Product struct {
	ID                 string
	Code               string
	Name               string
	Description        string
	PriceCents         int64
	OriginalPriceCents *int64
	Category           string
	Images             []string
	MainImageIndex     int
	Discount           int
	IsNew              bool
	InStock            bool
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

func NewProduct(
	name string,
	description string,
	priceCents int64,
	originalPriceCents *int64,
	category string,
	images []string,
	mainImageIndex int,
	discount int,
	isNew bool,
) *Product {
	return &Product{
		Code:               NewProductCode(),
		Name:               strings.TrimSpace(name),
		Description:        description,
		PriceCents:         priceCents,
		OriginalPriceCents: originalPriceCents,
		Category:           category,
		Images:             images,
		MainImageIndex:     mainImageIndex,
		Discount:           discount,
		IsNew:              isNew,
		InStock:            true,
	}
}

const codeSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewProductCode генерирует артикул вида FUR-<timestamp base36>-<4 случайных символа>.
// Случайный суффикс гарантирует уникальность даже при генерации в одну миллисекунду.
func NewProductCode() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	buf := make([]byte, 4)
	rand.Read(buf)
	suffix := make([]byte, 4)
	for i, b := range buf {
		suffix[i] = codeSuffixAlphabet[int(b)%len(codeSuffixAlphabet)]
	}

	return "FUR-" + ts + "-" + string(suffix)
}
