package services

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/repositories"
)

// EmailScopeGlobal makes email unique across companies and candidates;
// EmailScopePerKind keeps the two login realms independent.
const (
	EmailScopeGlobal  = "global"
	EmailScopePerKind = "per-kind"
)

type AuthService interface {
	RegisterCompany(req models.RegisterCompanyRequest) (*models.Company, error)
	RegisterCandidate(req models.RegisterCandidateRequest) (*models.Candidate, error)
	Login(email, password string) (string, error)
}

type authService struct {
	companyRepo   repositories.CompanyRepository
	candidateRepo repositories.CandidateRepository
	passwords     PasswordService
	tokens        TokenService
	emailScope    string
}

func NewAuthService(
	companyRepo repositories.CompanyRepository,
	candidateRepo repositories.CandidateRepository,
	passwords PasswordService,
	tokens TokenService,
	emailScope string,
) AuthService {
	if emailScope != EmailScopePerKind {
		emailScope = EmailScopeGlobal
	}
	return &authService{
		companyRepo:   companyRepo,
		candidateRepo: candidateRepo,
		passwords:     passwords,
		tokens:        tokens,
		emailScope:    emailScope,
	}
}

func (a *authService) RegisterCompany(req models.RegisterCompanyRequest) (*models.Company, error) {
	if req.Name == "" || req.INN == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("name, inn, email and password are required")
	}

	if a.emailScope == EmailScopeGlobal {
		taken, err := a.candidateRepo.ExistsByEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.Duplicate("identity", "email")
		}
	}

	hash, err := a.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:         req.Name,
		INN:          req.INN,
		Description:  req.Description,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := a.companyRepo.Create(company); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"company_id": company.ID, "email": company.Email}).
		Info("company registered")
	return company, nil
}

func (a *authService) RegisterCandidate(req models.RegisterCandidateRequest) (*models.Candidate, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("name, email and password are required")
	}

	if a.emailScope == EmailScopeGlobal {
		taken, err := a.companyRepo.ExistsByEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.Duplicate("identity", "email")
		}
	}

	hash, err := a.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	candidate := &models.Candidate{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		City:         req.City,
		Position:     req.Position,
	}
	if err := a.candidateRepo.Create(candidate); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"candidate_id": candidate.ID, "email": candidate.Email}).
		Info("candidate registered")
	return candidate, nil
}

// Login resolves the email against the company realm first, then the
// candidate realm, and issues a signed bearer token on a hash match.
func (a *authService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	if company, err := a.companyRepo.FindByEmail(email); err == nil {
		if !a.passwords.Compare(company.PasswordHash, password) {
			return "", apperrors.ErrInvalidCredentials
		}
		return a.tokens.Issue(Identity{Email: company.Email, Kind: KindCompany, UserID: company.ID})
	} else if !apperrors.IsNotFound(err) {
		return "", err
	}

	candidate, err := a.candidateRepo.FindByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", errors.Wrap(err, "login lookup failed")
	}
	if !a.passwords.Compare(candidate.PasswordHash, password) {
		return "", apperrors.ErrInvalidCredentials
	}
	return a.tokens.Issue(Identity{Email: candidate.Email, Kind: KindCandidate, UserID: candidate.ID})
}
