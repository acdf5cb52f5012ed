package services

import (
	"testing"
	"time"

	"github.com/mcastaneda/employment-cert-api/internal/models"
	"github.com/mcastaneda/employment-cert-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type employmentTestEnv struct {
	db                *gorm.DB
	authService       *AuthService
	employmentService *EmploymentService
	personRepo        repository.PersonRepository
}

func setupEmploymentTestEnv(t *testing.T) employmentTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Person{},
		&models.Account{},
		&models.EmploymentRecord{},
	)
	require.NoError(t, err)

	personRepo := repository.NewPersonRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	employmentRepo := repository.NewEmploymentRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return employmentTestEnv{
		db:                db,
		authService:       NewAuthService(personRepo, accountRepo),
		employmentService: NewEmploymentService(accountRepo, employmentRepo),
		personRepo:        personRepo,
	}
}

func validRecord() AddRecordInput {
	return AddRecordInput{
		FechaIngreso: "2020-01-01",
		FechaRetiro:  "",
		Cargo:        "Analista",
		TipoContrato: "Indefinido",
		Salario:      "2500000.00",
		Ciudad:       "Bogotá",
	}
}

func TestEmploymentService_AddRecord_OpenEnded(t *testing.T) {
	env := setupEmploymentTestEnv(t)

	account, err := env.authService.Register(validRegistration())
	require.NoError(t, err)

	record, err := env.employmentService.AddRecord(account.ID, validRecord())
	require.NoError(t, err)

	require.Nil(t, record.FechaRetiro, "empty retirement date must be stored as current employment")
	require.Equal(t, "Analista", record.Cargo)
	require.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), record.FechaIngreso)
}

func TestEmploymentService_AddRecord_WithEndDate(t *testing.T) {
	env := setupEmploymentTestEnv(t)

	account, err := env.authService.Register(validRegistration())
	require.NoError(t, err)

	input := validRecord()
	input.FechaRetiro = "2022-06-30"

	record, err := env.employmentService.AddRecord(account.ID, input)
	require.NoError(t, err)

	require.NotNil(t, record.FechaRetiro)
	require.Equal(t, time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC), *record.FechaRetiro)
}

// The record's owner must be the person resolved through the account, not
// the raw account id. The extra person created first makes the two id
// sequences diverge, which is exactly the case that corrupted ownership
// in earlier versions of this system.
func TestEmploymentService_AddRecord_OwnerIsPerson(t *testing.T) {
	env := setupEmploymentTestEnv(t)

	orphan := &models.Person{Nombre: "Sin Cuenta", NumeroIdentificacion: "111111111"}
	require.NoError(t, env.personRepo.Create(orphan))

	account, err := env.authService.Register(validRegistration())
	require.NoError(t, err)
	require.NotEqual(t, account.ID, account.PersonaID, "test setup must diverge the id sequences")

	record, err := env.employmentService.AddRecord(account.ID, validRecord())
	require.NoError(t, err)

	require.Equal(t, account.PersonaID, record.PersonaID)
	require.NotEqual(t, account.ID, record.PersonaID)
}

func TestEmploymentService_AddRecord_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*AddRecordInput)
		wantErr error
	}{
		{"missing start date", func(in *AddRecordInput) { in.FechaIngreso = "" }, ErrInvalidStartDate},
		{"malformed start date", func(in *AddRecordInput) { in.FechaIngreso = "01/01/2020" }, ErrInvalidStartDate},
		{"malformed end date", func(in *AddRecordInput) { in.FechaRetiro = "junio" }, ErrInvalidEndDate},
		{"end before start", func(in *AddRecordInput) { in.FechaRetiro = "2019-12-31" }, ErrEndBeforeStart},
		{"missing position", func(in *AddRecordInput) { in.Cargo = "  " }, ErrInvalidPosition},
		{"malformed salary", func(in *AddRecordInput) { in.Salario = "mucho" }, ErrInvalidSalary},
		{"negative salary", func(in *AddRecordInput) { in.Salario = "-1" }, ErrInvalidSalary},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := setupEmploymentTestEnv(t)

			account, err := env.authService.Register(validRegistration())
			require.NoError(t, err)

			input := validRecord()
			tc.mutate(&input)

			_, err = env.employmentService.AddRecord(account.ID, input)
			require.ErrorIs(t, err, tc.wantErr)

			var count int64
			require.NoError(t, env.db.Model(&models.EmploymentRecord{}).Count(&count).Error)
			require.Zero(t, count)
		})
	}
}

func TestEmploymentService_History_OrderedByStartDesc(t *testing.T) {
	env := setupEmploymentTestEnv(t)

	account, err := env.authService.Register(validRegistration())
	require.NoError(t, err)

	for _, start := range []string{"2018-03-01", "2021-09-15", "2016-01-10"} {
		input := validRecord()
		input.FechaIngreso = start
		_, err := env.employmentService.AddRecord(account.ID, input)
		require.NoError(t, err)
	}

	records, err := env.employmentService.History(account.PersonaID)
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, time.Date(2021, 9, 15, 0, 0, 0, 0, time.UTC), records[0].FechaIngreso)
	require.Equal(t, time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC), records[1].FechaIngreso)
	require.Equal(t, time.Date(2016, 1, 10, 0, 0, 0, 0, time.UTC), records[2].FechaIngreso)
}
