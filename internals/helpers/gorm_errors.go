// file: internals/helpers/gorm_errors.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kode error PostgreSQL yang dipetakan ke status HTTP.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// JsonDBError memetakan error storage ke envelope JSON yang konsisten:
// unique → 409, FK/check → 400, not found → 404, koneksi putus → 503, sisanya 500.
func JsonDBError(c *fiber.Ctx, err error, fallbackMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return JsonError(c, fiber.StatusConflict, "Data sudah ada (duplikat)")
		case pgForeignKeyViolation, pgCheckViolation:
			return JsonError(c, fiber.StatusBadRequest, "Referensi data tidak valid")
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return JsonError(c, fiber.StatusConflict, "Data sudah ada (duplikat)")
	}
	if errors.Is(err, gorm.ErrInvalidTransaction) {
		return JsonError(c, fiber.StatusServiceUnavailable, "Storage tidak tersedia")
	}

	if fallbackMsg == "" {
		fallbackMsg = "Terjadi kesalahan pada server"
	}
	return JsonError(c, fiber.StatusInternalServerError, fallbackMsg)
}

// IsUniqueViolation: dipakai retry loop nomor invoice.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// FromFiberError mengubah error hasil Transaction (biasanya *fiber.Error)
// menjadi response JSON konsisten. Jika bukan *fiber.Error, jatuhkan ke JsonDBError.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonDBError(c, err, err.Error())
}
