package model

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateArtworkRequestDefaultsTags(t *testing.T) {
	req := &CreateArtworkRequest{Title: ptr("Nocturne"), ImageURL: ptr("/img/nocturne.jpg")}
	require.NoError(t, req.Validate())

	artwork := req.ToArtwork()
	assert.NotNil(t, artwork.Tags)
	assert.Empty(t, artwork.Tags)
	assert.Nil(t, artwork.SoundURL)
}

func TestCreateArtworkRequestRequiresTitleAndImage(t *testing.T) {
	err := (&CreateArtworkRequest{}).Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{"title": "required", "image_url": "required"}, fields)
}

func TestEmptyStringsCountAsPresent(t *testing.T) {
	poem := &CreatePoemRequest{Title: ptr(""), Content: ptr("x")}
	require.NoError(t, poem.Validate())
	assert.Equal(t, "", poem.ToPoem().Title)

	artwork := &CreateArtworkRequest{Title: ptr("Untitled"), ImageURL: ptr("")}
	assert.NoError(t, artwork.Validate())

	contact := &CreateContactMessageRequest{Name: ptr(""), Email: ptr(""), InquiryType: ptr(""), Message: ptr("")}
	require.NoError(t, contact.Validate())
	assert.Equal(t, ContactMessage{}, *contact.ToContactMessage())

	order := &CreateOrderRequest{
		Items: []OrderItemRequest{{ProductID: ptr(""), Quantity: ptr(1)}},
		Email: ptr(""),
		Total: ptr(0.0),
	}
	assert.NoError(t, order.Validate())
}

func TestMissingContactFieldsAreRejected(t *testing.T) {
	err := (&CreateContactMessageRequest{Name: ptr("Ada")}).Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		assert.Equal(t, "required", fe.Tag())
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"email", "inquiry_type", "message"}, fields)
}

func TestCreatePoemRequestKeepsNullAuthor(t *testing.T) {
	req := &CreatePoemRequest{Title: ptr("Dusk"), Content: ptr("..."), Tags: []string{}}
	require.NoError(t, req.Validate())

	poem := req.ToPoem()
	assert.Nil(t, poem.Author)
	assert.Equal(t, []string{}, poem.Tags)
}

func TestCreateProductRequest(t *testing.T) {
	t.Run("negative price is rejected", func(t *testing.T) {
		req := &CreateProductRequest{Name: ptr("Print"), Price: ptr(-1.0), Category: ptr("Art"), ImageURL: ptr("x")}
		err := req.Validate()

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs, 1)
		assert.Equal(t, "price", verrs[0].Field())
		assert.Equal(t, "gte", verrs[0].Tag())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		req := &CreateProductRequest{Name: ptr("Zine"), Price: ptr(0.0), Category: ptr("Poetry"), ImageURL: ptr("x")}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing price is rejected", func(t *testing.T) {
		req := &CreateProductRequest{Name: ptr("Zine"), Category: ptr("Poetry"), ImageURL: ptr("x")}
		assert.Error(t, req.Validate())
	})

	t.Run("in_stock defaults to true", func(t *testing.T) {
		req := &CreateProductRequest{}
		req.SetDefaults()
		req.Name, req.Price, req.Category, req.ImageURL = ptr("Tee"), ptr(25.0), ptr("Clothing"), ptr("tee.png")

		product := req.ToProduct()
		assert.True(t, product.InStock)
		assert.Equal(t, 25.0, product.Price)
	})
}

func TestCreateOrderRequest(t *testing.T) {
	valid := func() *CreateOrderRequest {
		req := &CreateOrderRequest{}
		req.SetDefaults()
		req.Items = []OrderItemRequest{{ProductID: ptr("p1"), Quantity: ptr(2)}}
		req.Email = ptr("buyer@example.com")
		req.Total = ptr(40.0)
		return req
	}

	t.Run("valid order defaults to pending", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())

		order := req.ToOrder()
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Equal(t, []OrderItem{{ProductID: "p1", Quantity: 2}}, order.Items)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		req := valid()
		req.Items[0].Quantity = ptr(0)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, req.Validate(), &verrs)
		assert.Equal(t, "min", verrs[0].Tag())
		assert.Equal(t, "CreateOrderRequest.items[0].quantity", verrs[0].Namespace())
	})

	t.Run("negative total is rejected", func(t *testing.T) {
		req := valid()
		req.Total = ptr(-0.01)
		assert.Error(t, req.Validate())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		req := valid()
		req.Status = "refunded"
		assert.Error(t, req.Validate())
	})

	t.Run("empty item list is accepted", func(t *testing.T) {
		req := valid()
		req.Items = []OrderItemRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("explicit empty status falls back to pending", func(t *testing.T) {
		req := valid()
		req.Status = ""
		require.NoError(t, req.Validate())
		assert.Equal(t, OrderStatusPending, req.ToOrder().Status)
	})
}

func TestListRequestsRejectNegativeLimit(t *testing.T) {
	req := &ListArtworksRequest{}
	req.SetDefaults()
	assert.Equal(t, DefaultLimit, req.Limit)
	assert.NoError(t, req.Validate())

	req.Limit = -1
	assert.Error(t, req.Validate())
}

func TestBaseTouch(t *testing.T) {
	var b Base
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	b.Touch(first)

	assert.Equal(t, first.UTC(), b.CreatedAt)
	assert.Equal(t, time.UTC, b.CreatedAt.Location())

	later := first.Add(time.Hour)
	b.Touch(later)
	assert.Equal(t, first.UTC(), b.CreatedAt, "created_at is immutable")
	assert.Equal(t, later.UTC(), b.UpdatedAt)
}
