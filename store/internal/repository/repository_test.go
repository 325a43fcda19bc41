package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/store-service/store/internal/model"
)

func TestApplyFilter_SearchEscapesLikeMetacharacters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		search string
		want   string
	}{
		{
			name:   "percent is literal",
			search: "100%",
			want:   `%100\%%`,
		},
		{
			name:   "underscore is literal",
			search: "a_c",
			want:   `%a\_c%`,
		},
		{
			name:   "backslash is literal",
			search: `back\slash`,
			want:   `%back\\slash%`,
		},
		{
			name:   "plain term untouched",
			search: "clean code",
			want:   "%clean code%",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := applyFilter(qb.Select("b.id").From(booksTableName+" b"), model.BookFilter{Search: tt.search}, "b")
			query, args, err := q.ToSql()
			require.NoError(t, err)
			require.Contains(t, query, "ILIKE")
			require.Equal(t, []interface{}{tt.want, tt.want}, args)
		})
	}
}
