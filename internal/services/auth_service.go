package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mcastaneda/employment-cert-api/internal/constants"
	"github.com/mcastaneda/employment-cert-api/internal/models"
	"github.com/mcastaneda/employment-cert-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidName           = errors.New("el nombre solo puede contener letras y espacios")
	ErrInvalidIdentification = errors.New("el número de identificación debe tener entre 8 y 10 dígitos")
	ErrInvalidEmail          = errors.New("el correo es obligatorio")
	ErrInvalidPassword       = errors.New("la contraseña debe tener más de 8 caracteres e incluir una mayúscula, un dígito y un símbolo")
	ErrAlreadyRegistered     = errors.New("el número de identificación o el correo ya está registrado")
	ErrInvalidCredentials    = errors.New("Correo o contraseña incorrectos")
	ErrAccountNotFound       = errors.New("usuario no encontrado")
	ErrFailedToHashPassword  = errors.New("failed to hash password")
	ErrFailedToRegister      = errors.New("failed to register user")
)

var (
	namePattern   = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	idPattern     = regexp.MustCompile(`^\d{8,10}$`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	symbolPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// dummyHash is compared against when the email does not resolve to an
// account, so a login attempt costs one bcrypt verification either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-such-account"), bcrypt.DefaultCost)

// AuthService handles registration and authentication business logic.
type AuthService struct {
	personRepo  repository.PersonRepository
	accountRepo repository.AccountRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(personRepo repository.PersonRepository, accountRepo repository.AccountRepository) *AuthService {
	return &AuthService{
		personRepo:  personRepo,
		accountRepo: accountRepo,
	}
}

// RegisterInput represents the registration form fields.
type RegisterInput struct {
	Nombre               string
	NumeroIdentificacion string
	Correo               string
	Contrasena           string
}

// Register validates the input, then creates the person and its account
// in one transaction. Validation failures come back as field-specific
// sentinel errors so the caller can tell the user which field was wrong.
func (s *AuthService) Register(input RegisterInput) (*models.Account, error) {
	nombre := strings.TrimSpace(input.Nombre)
	correo := strings.TrimSpace(input.Correo)

	if nombre == "" || !namePattern.MatchString(nombre) {
		return nil, ErrInvalidName
	}
	if !idPattern.MatchString(input.NumeroIdentificacion) {
		return nil, ErrInvalidIdentification
	}
	if correo == "" {
		return nil, ErrInvalidEmail
	}
	if !validPassword(input.Contrasena) {
		return nil, ErrInvalidPassword
	}

	// Pre-check both unique fields so the common duplicate case is a clean
	// validation error rather than a constraint violation.
	if _, err := s.personRepo.FindByIdentification(input.NumeroIdentificacion); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check identification: %w", err)
	}
	if _, err := s.accountRepo.FindByEmail(correo); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	person := &models.Person{
		Nombre:               nombre,
		NumeroIdentificacion: input.NumeroIdentificacion,
	}
	account := &models.Account{
		Correo:         correo,
		ContrasenaHash: string(hashedPassword),
	}

	if err := s.accountRepo.CreatePersonWithAccount(person, account); err != nil {
		// Concurrent registrations can still trip the unique indexes.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToRegister, err)
	}

	account.Persona = *person
	return account, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Correo     string
	Contrasena string
}

// Login verifies credentials and returns the authenticated account.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(input LoginInput) (*models.Account, error) {
	account, err := s.accountRepo.FindByEmail(strings.TrimSpace(input.Correo))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Contrasena))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.ContrasenaHash), []byte(input.Contrasena)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// GetAccount retrieves an account with its person by ID.
func (s *AuthService) GetAccount(id uint64) (*models.Account, error) {
	account, err := s.accountRepo.FindByIDWithPerson(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return account, nil
}

func validPassword(password string) bool {
	return len(password) > constants.MinPasswordLength &&
		upperPattern.MatchString(password) &&
		digitPattern.MatchString(password) &&
		symbolPattern.MatchString(password)
}
