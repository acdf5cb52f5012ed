package services

import (
	"testing"

	"github.com/mcastaneda/employment-cert-api/internal/models"
	"github.com/mcastaneda/employment-cert-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	authService *AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
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
	authService := NewAuthService(personRepo, accountRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		authService: authService,
	}
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Nombre:               "Ana Pérez",
		NumeroIdentificacion: "123456789",
		Correo:               "ana@example.com",
		Contrasena:           "Abcdefg1!",
	}
}

func TestAuthService_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	account, err := env.authService.Register(validRegistration())
	require.NoError(t, err)

	var person models.Person
	require.NoError(t, env.db.Where("numero_identificacion = ?", "123456789").First(&person).Error)
	require.Equal(t, "Ana Pérez", person.Nombre)

	require.Equal(t, person.ID, account.PersonaID)
	require.Equal(t, "ana@example.com", account.Correo)
	require.NotEqual(t, "Abcdefg1!", account.ContrasenaHash)

	var personCount, accountCount int64
	require.NoError(t, env.db.Model(&models.Person{}).Count(&personCount).Error)
	require.NoError(t, env.db.Model(&models.Account{}).Count(&accountCount).Error)
	require.EqualValues(t, 1, personCount)
	require.EqualValues(t, 1, accountCount)
}

func TestAuthService_Register_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{"name with digits", func(in *RegisterInput) { in.Nombre = "Ana123" }, ErrInvalidName},
		{"empty name", func(in *RegisterInput) { in.Nombre = "   " }, ErrInvalidName},
		{"identification too short", func(in *RegisterInput) { in.NumeroIdentificacion = "1234567" }, ErrInvalidIdentification},
		{"identification too long", func(in *RegisterInput) { in.NumeroIdentificacion = "12345678901" }, ErrInvalidIdentification},
		{"identification with letters", func(in *RegisterInput) { in.NumeroIdentificacion = "12345678a" }, ErrInvalidIdentification},
		{"empty email", func(in *RegisterInput) { in.Correo = "" }, ErrInvalidEmail},
		{"password too short", func(in *RegisterInput) { in.Contrasena = "Abcde1!" }, ErrInvalidPassword},
		{"password without uppercase", func(in *RegisterInput) { in.Contrasena = "abcdefg1!" }, ErrInvalidPassword},
		{"password without digit", func(in *RegisterInput) { in.Contrasena = "Abcdefgh!" }, ErrInvalidPassword},
		{"password without symbol", func(in *RegisterInput) { in.Contrasena = "Abcdefg12" }, ErrInvalidPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := setupAuthTestEnv(t)

			input := validRegistration()
			tc.mutate(&input)

			_, err := env.authService.Register(input)
			require.ErrorIs(t, err, tc.wantErr)

			// The reject path must leave no rows behind.
			var personCount, accountCount int64
			require.NoError(t, env.db.Model(&models.Person{}).Count(&personCount).Error)
			require.NoError(t, env.db.Model(&models.Account{}).Count(&accountCount).Error)
			require.Zero(t, personCount)
			require.Zero(t, accountCount)
		})
	}
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(validRegistration())
	require.NoError(t, err)

	duplicateID := validRegistration()
	duplicateID.Correo = "otra@example.com"
	_, err = env.authService.Register(duplicateID)
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	duplicateEmail := validRegistration()
	duplicateEmail.NumeroIdentificacion = "987654321"
	_, err = env.authService.Register(duplicateEmail)
	require.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestAuthService_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	registered, err := env.authService.Register(validRegistration())
	require.NoError(t, err)

	account, err := env.authService.Login(LoginInput{
		Correo:     "ana@example.com",
		Contrasena: "Abcdefg1!",
	})
	require.NoError(t, err)
	require.Equal(t, registered.ID, account.ID)
}

func TestAuthService_Login_Failures(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(validRegistration())
	require.NoError(t, err)

	_, wrongPassword := env.authService.Login(LoginInput{
		Correo:     "ana@example.com",
		Contrasena: "Abcdefg2!",
	})
	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)

	_, unknownEmail := env.authService.Login(LoginInput{
		Correo:     "nadie@example.com",
		Contrasena: "Abcdefg1!",
	})
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)

	// Both failure modes surface the exact same message.
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
