package handlers

import (
	"net/http"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegisterReportsMissingFields(t *testing.T) {
	c, w := jsonContext(t, "POST", "/users/register", `{"name":"Asha"}`)

	Register(nil, "secret", 0)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := w.Body.String()
	for _, field := range []string{"email", "phone", "address", "password"} {
		if !strings.Contains(body, field) {
			t.Fatalf("expected %s in validation details, got %s", field, body)
		}
	}
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	body := `{"name":"Asha","email":"nope","phone":"555","address":"12 Main St","password":"pw"}`
	c, w := jsonContext(t, "POST", "/users/register", body)

	Register(nil, "secret", 0)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	c, w := jsonContext(t, "POST", "/users/login", `{"email":"a@x.com"}`)

	Login(nil, "secret", 0)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestReplaceCartRequiresAuthenticatedUser(t *testing.T) {
	c, w := jsonContext(t, "POST", "/users/cart", `{"cart":[]}`)

	ReplaceCart(nil)(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestReplaceCartRejectsBadItems(t *testing.T) {
	cases := []string{
		`{"cart":[{"productId":"","qty":1}]}`,
		`{"cart":[{"productId":"basmati-0001","qty":0}]}`,
		`{"cart":[{"productId":"basmati-0001","qty":-2}]}`,
	}
	for _, body := range cases {
		c, w := jsonContext(t, "POST", "/users/cart", body)
		c.Set("userId", primitive.NewObjectID())

		ReplaceCart(nil)(c)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestAdminLoginRejectsWrongEmail(t *testing.T) {
	c, w := jsonContext(t, "POST", "/admin/login", `{"email":"intruder@x.com","password":"pw"}`)

	AdminLogin("admin@x.com", "$2a$10$notarealhash", "secret", 0)(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminLoginRejectsWhenUnconfigured(t *testing.T) {
	c, w := jsonContext(t, "POST", "/admin/login", `{"email":"admin@x.com","password":"pw"}`)

	AdminLogin("", "", "secret", 0)(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
