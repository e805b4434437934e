package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	const query = `
		INSERT INTO bookings (
			user_id, type, item_id, check_in_date, check_out_date, guests, total_price, status
		) VALUES (
			:user_id, :type, :item_id, :check_in_date, :check_out_date, :guests, :total_price, :status
		)
		RETURNING id, user_id, type, item_id, check_in_date, check_out_date,
		          guests, total_price, status, created_at
	`

	rows, err := r.db.NamedQueryContext(ctx, query, booking)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}
	var created domain.Booking
	if err := rows.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingListFilter) ([]domain.Booking, error) {
	query, args := buildBookingListQuery(filter)
	bookings := make([]domain.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return err
}

func buildBookingListQuery(filter domain.BookingListFilter) (string, []any) {
	const base = `
		SELECT
			b.id,
			b.user_id,
			b.type,
			b.item_id,
			b.check_in_date,
			b.check_out_date,
			b.guests,
			b.total_price,
			b.status,
			b.created_at,
			CASE
				WHEN b.type = 'hotel' THEN h.name
				WHEN b.type = 'flight' THEN f.airline || ' - ' || f.from_city || ' to ' || f.to_city
			END AS item_name
		FROM bookings b
		LEFT JOIN hotels h ON b.type = 'hotel' AND h.id = b.item_id
		LEFT JOIN flights f ON b.type = 'flight' AND f.id = b.item_id`

	var p predicates
	if filter.UserID != nil {
		p.add("b.user_id = ?", *filter.UserID)
	}
	if len(filter.Types) > 0 {
		types := make(pq.StringArray, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		p.add("b.type = ANY(?)", types)
	}

	var builder strings.Builder
	builder.WriteString(base)
	builder.WriteString(p.where())
	builder.WriteString("\n\t\tORDER BY b.created_at DESC, b.id DESC")
	return builder.String(), p.values()
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
