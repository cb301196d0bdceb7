package service

import (
	"errors"
	"strings"

	"coastwatch/config"
	"coastwatch/internal/auth"
	"coastwatch/internal/domain"
	"coastwatch/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists   = errors.New("email already registered")
	ErrMobileExists  = errors.New("phone already registered")
	ErrContactExists = errors.New("contact already registered")
	ErrNGONotFound   = errors.New("ngo not found")
	// ErrInvalidCreds covers both unknown identifier and wrong
	// password, so callers cannot enumerate accounts.
	ErrInvalidCreds = errors.New("invalid credentials")
)

type AuthService struct {
	cfg        *config.Config
	citizens   CitizenStore
	employees  EmployeeStore
	volunteers VolunteerStore
	ngos       NGOStore
}

func NewAuthService(cfg *config.Config, citizens CitizenStore, employees EmployeeStore, volunteers VolunteerStore, ngos NGOStore) *AuthService {
	return &AuthService{cfg: cfg, citizens: citizens, employees: employees, volunteers: volunteers, ngos: ngos}
}

// Register creates a citizen account. An identifier containing '@' is
// treated as an email, anything else as a mobile number.
func (s *AuthService) Register(identifier, password string) (*models.Citizen, string, string, error) {
	email, mobile := splitIdentifier(identifier)

	if email != nil {
		if _, err := s.citizens.GetByEmail(*email); err == nil {
			return nil, "", "", ErrEmailExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", err
		}
	}
	if mobile != nil {
		if _, err := s.citizens.GetByMobile(*mobile); err == nil {
			return nil, "", "", ErrMobileExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	c := &models.Citizen{Email: email, Mobile: mobile, PasswordHash: string(hash)}
	if err := s.citizens.Create(c); err != nil {
		return nil, "", "", err
	}

	access, err := auth.GenerateAccessToken(&s.cfg.JWT, c.ID, identifier, domain.RoleCitizen)
	if err != nil {
		return c, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, c.ID)
	if err != nil {
		return c, access, "", err
	}
	return c, access, refresh, nil
}

// Login resolves the identifier and verifies the credential against the
// stored bcrypt hash.
func (s *AuthService) Login(identifier, password string) (*models.Citizen, string, string, error) {
	c, err := s.citizens.GetByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, c.ID, identifier, domain.RoleCitizen)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, c.ID)
	if err != nil {
		return nil, "", "", err
	}
	return c, access, refresh, nil
}

// CheckExists resolves an email-or-mobile identifier to an internal id.
func (s *AuthService) CheckExists(identifier string) (uint, bool, error) {
	c, err := s.citizens.GetByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return c.ID, true, nil
}

// StaffLogin authenticates an employee account for moderation access.
func (s *AuthService) StaffLogin(email, password string) (*models.Employee, string, string, error) {
	e, err := s.employees.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, e.ID, e.Email, domain.RoleEmployee)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, e.ID)
	if err != nil {
		return nil, "", "", err
	}
	return e, access, refresh, nil
}

// RegisterVolunteer creates a volunteer affiliated with an existing NGO.
func (s *AuthService) RegisterVolunteer(contact, email, password string, ngoID uint) (*models.Volunteer, error) {
	if _, err := s.ngos.GetByID(ngoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNGONotFound
		}
		return nil, err
	}
	if _, err := s.volunteers.GetByContact(contact); err == nil {
		return nil, ErrContactExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	v := &models.Volunteer{Contact: contact, Email: email, PasswordHash: string(hash), NGOID: ngoID}
	if err := s.volunteers.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

func splitIdentifier(identifier string) (email, mobile *string) {
	if strings.Contains(identifier, "@") {
		return &identifier, nil
	}
	return nil, &identifier
}
