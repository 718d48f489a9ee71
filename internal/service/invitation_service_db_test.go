package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/danhluom/thiepcuoi-backend/internal/autosave"
	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/repository"
	"github.com/danhluom/thiepcuoi-backend/pkg/sheets"
)

func newMockedService(t *testing.T) (*InvitationService, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	svc := NewInvitationService(
		repository.NewInvitationRepository(db),
		sheets.NewClient(),
		"https://thiepcuoi.vn",
		zap.NewNop().Sugar(),
	)
	t.Cleanup(svc.Close)
	return svc, mock
}

func invitationRows(codes ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "code", "customer_name", "data", "created_by", "created_at", "updated_at"})
	for i, code := range codes {
		rows.AddRow(uint(i+1), code, "Khách "+code, []byte(`{}`), uint(1), time.Now(), time.Now())
	}
	return rows
}

func TestDeleteInvitation_RemovesRecord(t *testing.T) {
	svc, mock := newMockedService(t)
	code := "k3WqX9pLm2ZcVd8TnRy4"

	mock.ExpectQuery(`SELECT (.+) FROM "invitations" WHERE code =`).WillReturnRows(invitationRows(code))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "invitations" WHERE code =`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.DeleteInvitation(code); err != nil {
		t.Fatalf("DeleteInvitation: %v", err)
	}

	mock.ExpectQuery(`SELECT (.+) FROM "invitations" ORDER BY created_at DESC`).WillReturnRows(invitationRows())
	list, err := svc.GetInvitations()
	if err != nil {
		t.Fatalf("GetInvitations: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("list after delete has %d records, want 0", len(list))
	}

	mock.ExpectQuery(`SELECT (.+) FROM "invitations" WHERE code =`).WillReturnRows(invitationRows())
	if _, err := svc.GetInvitation(code); !errors.Is(err, ErrInvitationNotFound) {
		t.Errorf("GetInvitation after delete: got %v, want ErrInvitationNotFound", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteInvitation_UnknownCode(t *testing.T) {
	svc, mock := newMockedService(t)

	mock.ExpectQuery(`SELECT (.+) FROM "invitations" WHERE code =`).WillReturnRows(invitationRows())

	if err := svc.DeleteInvitation("no-such-code"); !errors.Is(err, ErrInvitationNotFound) {
		t.Errorf("DeleteInvitation: got %v, want ErrInvitationNotFound", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteInvitation_DropsPendingAutosave(t *testing.T) {
	svc, mock := newMockedService(t)
	code := "k3WqX9pLm2ZcVd8TnRy4"

	mock.ExpectQuery(`SELECT (.+) FROM "invitations" WHERE code =`).WillReturnRows(invitationRows(code))
	status, err := svc.Autosave(code, models.InvitationData{GroomName: "Anh Tú"})
	if err != nil {
		t.Fatalf("Autosave: %v", err)
	}
	if status != autosave.StatusSaving {
		t.Fatalf("status after queue = %q, want %q", status, autosave.StatusSaving)
	}

	mock.ExpectQuery(`SELECT (.+) FROM "invitations" WHERE code =`).WillReturnRows(invitationRows(code))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "invitations" WHERE code =`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.DeleteInvitation(code); err != nil {
		t.Fatalf("DeleteInvitation: %v", err)
	}

	if got := svc.AutosaveStatus(code); got != autosave.StatusIdle {
		t.Errorf("status after delete = %q, want %q", got, autosave.StatusIdle)
	}

	// The queued write was cancelled, so no UPDATE may reach the store.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
