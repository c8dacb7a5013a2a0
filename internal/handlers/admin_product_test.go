package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateProductRequiresName(t *testing.T) {
	c, w := jsonContext(t, "POST", "/admin/products", `{"category":"Oils","price":260}`)

	CreateProduct(nil)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCreateProductRequiresCategory(t *testing.T) {
	c, w := jsonContext(t, "POST", "/admin/products", `{"title":"Coconut Oil","basePrice":260}`)

	CreateProduct(nil)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	c, w := jsonContext(t, "POST", "/admin/products", `{"name":"Coconut Oil","category":"Oils","price":-1}`)

	CreateProduct(nil)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateProductRejectsMalformedID(t *testing.T) {
	c, w := jsonContext(t, "POST", "/admin/products/bad%20id", `{"price":10}`)
	c.Params = gin.Params{{Key: "id", Value: "bad id"}}

	UpdateProduct(nil)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteProductRejectsBadHardFlag(t *testing.T) {
	c, w := jsonContext(t, "DELETE", "/admin/products/coconut-oil-1234?hard=maybe", "")
	c.Params = gin.Params{{Key: "id", Value: "coconut-oil-1234"}}

	DeleteProduct(nil)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
