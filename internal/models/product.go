package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UnitKilogram = "kg"
	UnitLitre    = "L"
)

// Product is the authoritative catalog record. The productId slug is the
// public identifier; the Mongo _id is never exposed to clients directly.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID   string             `bson:"productId" json:"productId"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Varieties   []string           `bson:"varieties" json:"varieties"`
	IsLiquid    bool               `bson:"isLiquid" json:"isLiquid"`
	Unit        string             `bson:"unit" json:"unit"`
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

const (
	DefaultImageURL    = "placeholder.jpg"
	DefaultDescription = "High quality essential product."
)

var (
	productIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	nonAlphanumeric  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lowercases a display name and collapses every run of
// non-alphanumeric characters into a single hyphen.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeProductID lowercases an explicit product id and rejects anything
// outside the slug alphabet.
func NormalizeProductID(raw string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if id == "" || !productIDPattern.MatchString(id) {
		return "", fmt.Errorf("product id must contain letters, numbers, or dashes only: %q", raw)
	}
	return id, nil
}

// idTailModulo bounds the 4-digit disambiguating tail appended to derived ids.
const idTailModulo = 10000

// DeriveProductID builds a product id from the name: slug plus a time-based
// 4-digit tail. On collision the tail is advanced until a free id is found.
func DeriveProductID(name string, now time.Time, exists func(string) (bool, error)) (string, error) {
	base := Slugify(name)
	if base == "" {
		return "", errors.New("name does not produce a usable product id")
	}

	tail := int(now.UnixMilli() % idTailModulo)
	for attempt := 0; attempt < idTailModulo; attempt++ {
		candidate := fmt.Sprintf("%s-%04d", base, (tail+attempt)%idTailModulo)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free product id for %q", base)
}

// UnitFor returns the unit implied by the liquid flag.
func UnitFor(isLiquid bool) string {
	if isLiquid {
		return UnitLitre
	}
	return UnitKilogram
}

// ResolveLiquidUnit decides the stored (isLiquid, unit) pair for a write.
// An explicit isLiquid wins; otherwise an explicit unit implies the flag;
// otherwise the current flag stands. The returned pair never disagrees.
func ResolveLiquidUnit(isLiquid *bool, unit *string, currentLiquid bool) (bool, string) {
	liquid := currentLiquid
	if isLiquid != nil {
		liquid = *isLiquid
	} else if unit != nil {
		liquid = strings.EqualFold(strings.TrimSpace(*unit), UnitLitre)
	}
	return liquid, UnitFor(liquid)
}
