package stats

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRecordShare(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatsRepoSQL(db)
	created := time.Date(2021, 2, 14, 10, 0, 0, 0, time.UTC)

	mock.
		ExpectExec("INSERT INTO shares").
		WithArgs(int64(25), "6021f75a2d4bba0001a0a1b2", created).
		WillReturnResult(sqlmock.NewResult(int64(7), int64(1)))

	id, err := repo.RecordShare(25, "6021f75a2d4bba0001a0a1b2", created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if id != 7 {
		t.Fatalf("expected 7 but was %v", id)
	}

	// error
	mock.
		ExpectExec("INSERT INTO shares").
		WithArgs(int64(25), "6021f75a2d4bba0001a0a1b2", created).
		WillReturnError(errors.New("db_error"))

	_, err = repo.RecordShare(25, "6021f75a2d4bba0001a0a1b2", created)
	if err == nil {
		t.Fatalf("expected error but was nil")
	}
}

func TestTopSharers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatsRepoSQL(db)

	expected := []*LeaderboardEntry{
		{UserID: 25, Username: "dana.reyes", Shares: 12},
		{UserID: 3, Username: "sam.curtis", Shares: 5},
	}

	rows := sqlmock.NewRows([]string{"id", "username", "cnt"})
	for _, entry := range expected {
		rows = rows.AddRow(entry.UserID, entry.Username, entry.Shares)
	}

	mock.
		ExpectQuery("SELECT u.`id`, u.`username`, COUNT").
		WithArgs(10).
		WillReturnRows(rows)

	result, err := repo.TopSharers(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if !reflect.DeepEqual(expected, result) {
		t.Fatalf("expected %v, but was %v", expected, result)
	}

	// query error
	mock.
		ExpectQuery("SELECT u.`id`, u.`username`, COUNT").
		WithArgs(10).
		WillReturnError(errors.New("db_error"))

	result, err = repo.TopSharers(10)
	if result != nil || err == nil {
		t.Fatalf("expected error but was %v, %v", result, err)
	}

	// scan error
	badRows := sqlmock.NewRows([]string{"id", "username", "cnt"}).
		AddRow("not_an_id", nil, "nope")

	mock.
		ExpectQuery("SELECT u.`id`, u.`username`, COUNT").
		WithArgs(10).
		WillReturnRows(badRows)

	result, err = repo.TopSharers(10)
	if result != nil || err == nil {
		t.Fatalf("expected scan error but was %v, %v", result, err)
	}
}
