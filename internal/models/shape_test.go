package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToBuyerShape(t *testing.T) {
	p := Product{
		ProductID: "coconut-oil-1234",
		Name:      "Coconut Oil",
		Price:     260,
		Category:  "Oils",
		ImageURL:  "coconut.jpg",
		Varieties: []string{"Cold Pressed"},
		IsLiquid:  true,
		Unit:      UnitLitre,
		Active:    true,
	}

	buyer := ToBuyerShape(p)

	assert.Equal(t, "coconut-oil-1234", buyer.ID)
	assert.Equal(t, "Coconut Oil", buyer.Title)
	assert.Equal(t, 260.0, buyer.BasePrice)
	assert.Equal(t, "coconut.jpg", buyer.Img)
	assert.True(t, buyer.Oil)
	assert.Equal(t, []string{"Cold Pressed"}, buyer.Varieties)
}

func TestToBuyerShapeFallsBackToMongoID(t *testing.T) {
	objectID := primitive.NewObjectID()
	buyer := ToBuyerShape(Product{ID: objectID, Name: "Legacy"})

	assert.Equal(t, objectID.Hex(), buyer.ID)
	assert.NotNil(t, buyer.Varieties, "varieties should serialize as [], not null")
}

func TestStorageFieldsAcceptsBuyerVocabulary(t *testing.T) {
	var payload ProductPayload
	body := `{"title":"Coconut Oil","basePrice":260,"category":"Oils","img":"coconut.jpg","oil":true}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	fields := payload.StorageFields()

	if assert.NotNil(t, fields.Name) {
		assert.Equal(t, "Coconut Oil", *fields.Name)
	}
	if assert.NotNil(t, fields.Price) {
		assert.Equal(t, 260.0, *fields.Price)
	}
	if assert.NotNil(t, fields.ImageURL) {
		assert.Equal(t, "coconut.jpg", *fields.ImageURL)
	}
	if assert.NotNil(t, fields.IsLiquid) {
		assert.True(t, *fields.IsLiquid)
	}
}

func TestStorageFieldsAcceptsStorageVocabulary(t *testing.T) {
	var payload ProductPayload
	body := `{"name":"Toor Dal","price":140,"category":"Dals","imageUrl":"toor.jpg","isLiquid":false}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	fields := payload.StorageFields()

	if assert.NotNil(t, fields.Name) {
		assert.Equal(t, "Toor Dal", *fields.Name)
	}
	if assert.NotNil(t, fields.IsLiquid) {
		assert.False(t, *fields.IsLiquid)
	}
}

func TestStorageFieldsStorageTermWins(t *testing.T) {
	var payload ProductPayload
	body := `{"name":"Stored","title":"Shown","price":10,"basePrice":99,"productId":"stored-1","id":"shown-1"}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	fields := payload.StorageFields()

	assert.Equal(t, "Stored", *fields.Name)
	assert.Equal(t, 10.0, *fields.Price)
	assert.Equal(t, "stored-1", *fields.ProductID)
}

func TestBuyerShapeJSONUsesBuyerTerms(t *testing.T) {
	body, err := json.Marshal(ToBuyerShape(Product{ProductID: "basmati-0001", Name: "Basmati", Price: 170, IsLiquid: false}))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	s := string(body)
	assert.Contains(t, s, `"title":"Basmati"`)
	assert.Contains(t, s, `"basePrice":170`)
	assert.Contains(t, s, `"oil":false`)
	assert.NotContains(t, s, `"isLiquid"`)
	assert.NotContains(t, s, `"imageUrl"`)
}
