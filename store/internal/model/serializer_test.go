package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/store-service/store/internal/errs"
)

func TestBookPayload_Book(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   BookPayload
		want      Book
		wantField string
	}{
		{
			name:    "ok",
			payload: BookPayload{Name: "Hotel", Price: PriceInput("77.33"), AuthorName: "Arthur Hailey"},
			want:    Book{Name: "Hotel", Price: "77.33", AuthorName: "Arthur Hailey"},
		},
		{
			name:    "integer price",
			payload: BookPayload{Name: "Airport", Price: PriceInput("1088")},
			want:    Book{Name: "Airport", Price: "1088"},
		},
		{
			name:      "missing price",
			payload:   BookPayload{Name: "Hotel"},
			wantField: "price",
		},
		{
			name:      "not a number",
			payload:   BookPayload{Name: "Hotel", Price: PriceInput("abc")},
			wantField: "price",
		},
		{
			name:      "negative",
			payload:   BookPayload{Name: "Hotel", Price: PriceInput("-1.00")},
			wantField: "price",
		},
		{
			name:      "too many decimal places",
			payload:   BookPayload{Name: "Hotel", Price: PriceInput("7.333")},
			wantField: "price",
		},
		{
			name:      "too many digits",
			payload:   BookPayload{Name: "Hotel", Price: PriceInput("123456.78")},
			wantField: "price",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			book, err := tt.payload.Book()
			if tt.wantField != "" {
				var ve *errs.ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, tt.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, book)
		})
	}
}

func TestPriceInput_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var p BookPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Hotel","price":"77.33"}`), &p))
	require.Equal(t, PriceInput("77.33"), p.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Hotel","price":88.5}`), &p))
	require.Equal(t, PriceInput("88.5"), p.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Hotel","price":null}`), &p))
	require.Equal(t, PriceInput(""), p.Price)
}

func TestRelationPatch_Validate(t *testing.T) {
	t.Parallel()
	rate := func(v int) *int { return &v }

	require.NoError(t, (&RelationPatch{}).Validate())
	require.NoError(t, (&RelationPatch{Rate: rate(1)}).Validate())
	require.NoError(t, (&RelationPatch{Rate: rate(5)}).Validate())

	err := (&RelationPatch{Rate: rate(7)}).Validate()
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "rate", ve.Field)
	require.Equal(t, `"7" is not a valid choice.`, ve.Message)

	err = (&RelationPatch{Rate: rate(0)}).Validate()
	require.ErrorAs(t, err, &ve)
	require.Equal(t, `"0" is not a valid choice.`, ve.Message)
}

func TestRelationPatch_Fields(t *testing.T) {
	t.Parallel()
	liked := true
	rate := 4

	require.Empty(t, (&RelationPatch{}).Fields())

	fields := (&RelationPatch{Like: &liked, Rate: &rate}).Fields()
	require.Equal(t, map[string]interface{}{"liked": true, "rate": 4}, fields)
}

func TestParseOrdering(t *testing.T) {
	t.Parallel()

	field, desc, err := ParseOrdering("")
	require.NoError(t, err)
	require.Equal(t, "id", field)
	require.False(t, desc)

	field, desc, err = ParseOrdering("-price")
	require.NoError(t, err)
	require.Equal(t, "price", field)
	require.True(t, desc)

	field, desc, err = ParseOrdering("author_name")
	require.NoError(t, err)
	require.Equal(t, "author_name", field)
	require.False(t, desc)

	_, _, err = ParseOrdering("rating; drop table books")
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "ordering", ve.Field)
}
