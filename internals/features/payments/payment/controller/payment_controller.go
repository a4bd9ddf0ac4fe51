package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "tutorku_backend/internals/features/home/notifications/model"
	notifService "tutorku_backend/internals/features/home/notifications/service"
	"tutorku_backend/internals/features/payments/payment/dto"
	"tutorku_backend/internals/features/payments/payment/model"
	"tutorku_backend/internals/features/payments/payment/service"
	userModel "tutorku_backend/internals/features/users/user/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/policy"
)

type PaymentController struct {
	DB       *gorm.DB
	Gateway  service.Gateway
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB, gateway service.Gateway) *PaymentController {
	return &PaymentController{DB: db, Gateway: gateway, Validate: validator.New()}
}

/* ================================
   USER ENDPOINTS
================================ */

// 🟢 POST /api/u/payments
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now()
	p := req.ToModel(studentID)
	if !p.PaymentDueDate.After(now) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jatuh tempo harus di masa depan")
	}

	if err := service.CreateWithInvoice(ctrl.DB.WithContext(c.Context()), p, now); err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat payment")
	}

	var student userModel.UserModel
	_ = ctrl.DB.WithContext(c.Context()).
		Select("user_id", "user_name", "user_email", "user_phone").
		Where("user_id = ?", studentID).
		First(&student).Error

	cust := service.CustomerInput{Name: student.UserName, Email: student.UserEmail}
	if student.UserPhone != nil {
		cust.Phone = *student.UserPhone
	}

	result, gerr := ctrl.Gateway.Charge(p, cust)
	if gerr != nil {
		reason := gerr.Error()
		_ = p.MarkAsFailed(reason)
		_ = ctrl.DB.WithContext(c.Context()).Save(p).Error
		return helper.JsonError(c, fiber.StatusBadGateway, "Gateway pembayaran menolak transaksi")
	}

	p.PaymentGatewayRef = &result.GatewayRef
	if result.Completed {
		// mode development: tidak ada tagihan nyata
		p.PaymentAmount = 0
		if err := p.MarkAsCompleted(now, result.Method); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(p).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan payment")
	}

	resp := dto.ToPaymentResponse(p, now)
	if result.RedirectURL != "" {
		resp.PaymentRedirectURL = &result.RedirectURL
	}
	return helper.JsonCreated(c, "Payment berhasil dibuat", resp)
}

// 🟢 GET /api/u/payments/my — kronologis, filter rentang tanggal opsional
func (ctrl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.WithContext(c.Context()).Model(&model.PaymentModel{}).
		Where("payment_student_id = ?", studentID)

	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if ts, perr := time.Parse("2006-01-02", from); perr == nil {
			q = q.Where("payment_created_at >= ?", ts)
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if ts, perr := time.Parse("2006-01-02", to); perr == nil {
			q = q.Where("payment_created_at < ?", ts.Add(24*time.Hour))
		}
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung payment")
	}

	var payments []model.PaymentModel
	if err := q.Order("payment_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&payments).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar payment")
	}

	return helper.JsonList(c, "Daftar payment berhasil diambil",
		dto.ToPaymentResponseList(payments, time.Now()),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/payments/:id — pemilik atau admin
func (ctrl *PaymentController) GetPaymentByID(c *fiber.Ctx) error {
	p, err := ctrl.loadPayment(c)
	if err != nil {
		return err
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role := helper.GetRoleFromToken(c)
	if !policy.CanOrOwner(role, policy.ResourcePayment, policy.ActionRead, p.PaymentStudentID == userID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Kamu tidak punya akses ke payment ini")
	}

	return helper.JsonOK(c, "Payment berhasil diambil", dto.ToPaymentResponse(p, time.Now()))
}

// 🟡 POST /api/u/payments/:id/cancel — pemilik, sebelum lunas
func (ctrl *PaymentController) CancelPayment(c *fiber.Ctx) error {
	p, err := ctrl.loadPayment(c)
	if err != nil {
		return err
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if p.PaymentStudentID != userID && !policy.IsElevated(helper.GetRoleFromToken(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Kamu tidak punya akses ke payment ini")
	}

	if err := p.Cancel(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(p).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membatalkan payment")
	}
	return helper.JsonUpdated(c, "Payment berhasil dibatalkan", dto.ToPaymentResponse(p, time.Now()))
}

/* ================================
   ADMIN ENDPOINTS
================================ */

// 🟢 GET /api/a/payments — semua payment, filter status/student
func (ctrl *PaymentController) ListPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.WithContext(c.Context()).Model(&model.PaymentModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if studentID := strings.TrimSpace(c.Query("student_id")); studentID != "" {
		if id, perr := uuid.Parse(studentID); perr == nil {
			q = q.Where("payment_student_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung payment")
	}

	var payments []model.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&payments).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar payment")
	}

	return helper.JsonList(c, "Daftar payment berhasil diambil",
		dto.ToPaymentResponseList(payments, time.Now()),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/payments/overdue — lewat jatuh tempo dan belum lunas
func (ctrl *PaymentController) GetOverduePayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	now := time.Now()

	q := ctrl.DB.WithContext(c.Context()).Model(&model.PaymentModel{}).
		Where("payment_due_date < ? AND payment_status NOT IN ?",
			now, []model.PaymentStatus{
				model.PaymentStatusCompleted,
				model.PaymentStatusCancelled,
				model.PaymentStatusRefunded,
			})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung payment overdue")
	}

	var payments []model.PaymentModel
	if err := q.Order("payment_due_date ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&payments).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil payment overdue")
	}

	return helper.JsonList(c, "Daftar payment overdue berhasil diambil",
		dto.ToPaymentResponseList(payments, now),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟡 POST /api/a/payments/:id/refund — admin saja
func (ctrl *PaymentController) RefundPayment(c *fiber.Ctx) error {
	role := helper.GetRoleFromToken(c)
	if !policy.Can(role, policy.ResourcePayment, policy.ActionRefund) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin yang boleh melakukan refund")
	}

	p, err := ctrl.loadPayment(c)
	if err != nil {
		return err
	}

	var req dto.RefundPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now()
	if err := p.Refund(req.RefundAmount, now); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(p).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan refund")
	}

	notifService.NotifyUser(ctrl.DB, p.PaymentStudentID,
		notifModel.NotificationTypePaymentCompleted,
		"Refund diproses",
		"Refund untuk invoice "+p.PaymentInvoiceNumber+" sudah diproses")

	return helper.JsonUpdated(c, "Refund berhasil diproses", dto.ToPaymentResponse(p, now))
}

/* ================================
   INTERNAL
================================ */

func (ctrl *PaymentController) loadPayment(c *fiber.Ctx) (*model.PaymentModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var p model.PaymentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("payment_id = ?", id).
		First(&p).Error; err != nil {
		return nil, helper.JsonDBError(c, err, "Gagal mengambil payment")
	}
	return &p, nil
}
