package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

func TestReportWhere(t *testing.T) {
	where, args := reportWhere(repository.SalesReportFilters{})
	assert.Empty(t, where)
	assert.Nil(t, args)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)
	partnerID := int64(3)

	where, args = reportWhere(repository.SalesReportFilters{StartDate: &start, EndDate: &end, PartnerID: &partnerID})
	assert.Equal(t, " WHERE s.created_at >= $1 AND s.created_at <= $2 AND s.partner_id = $3", where)
	assert.Equal(t, []any{start, end, partnerID}, args)

	where, args = reportWhere(repository.SalesReportFilters{PartnerID: &partnerID})
	assert.Equal(t, " WHERE s.partner_id = $1", where)
	assert.Equal(t, []any{partnerID}, args)
}

func TestInsertSaleReturnsStoredValue(t *testing.T) {
	assert.Contains(t, insertSaleSQL, "RETURNING id, value, created_at")
}
