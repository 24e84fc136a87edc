package usecase

import (
	"context"
	"errors"
	"time"

	"crisislink/internal/converter"
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
	"crisislink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// Window for the emergency_alerts stat: disclosures in the trailing day.
const alertWindow = 24 * time.Hour

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetPatients(ctx context.Context, search string, limit int) (*dto.PatientListResponse, error)
	GetPatientDashboard(ctx context.Context, userID uuid.UUID) (*dto.PatientDashboardResponse, error)
	GetDoctorDashboard(ctx context.Context, userID uuid.UUID) (*dto.DoctorDashboardResponse, error)
}

type dashboardUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	profileRepo       repository.MedicalProfileRepository
	doctorProfileRepo repository.DoctorProfileRepository
	accessLogRepo     repository.AccessLogRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.MedicalProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	accessLogRepo repository.AccessLogRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		profileRepo:       profileRepo,
		doctorProfileRepo: doctorProfileRepo,
		accessLogRepo:     accessLogRepo,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totalAccesses, err := u.accessLogRepo.CountAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count accesses: %+v", err)
		return nil, err
	}

	activeProfiles, err := u.profileRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count profiles: %+v", err)
		return nil, err
	}

	alerts, err := u.accessLogRepo.CountSince(ctx, u.db, time.Now().Add(-alertWindow))
	if err != nil {
		u.log.Warnf("Failed to count recent accesses: %+v", err)
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalAccesses:   totalAccesses,
		ActiveProfiles:  activeProfiles,
		EmergencyAlerts: alerts,
	}, nil
}

func (u *dashboardUsecase) GetPatients(ctx context.Context, search string, limit int) (*dto.PatientListResponse, error) {
	profiles, err := u.profileRepo.FindAllWithUser(ctx, u.db, &entity.PatientFilter{
		Search: search,
		Limit:  limit,
	})
	if err != nil {
		u.log.Warnf("Failed to list patient profiles: %+v", err)
		return nil, err
	}

	now := time.Now()
	patients := make([]dto.PatientListItem, 0, len(profiles))
	for i := range profiles {
		lastLog, err := u.accessLogRepo.FindLatestByUserID(ctx, u.db, profiles[i].UserID)
		if err != nil {
			u.log.Warnf("Failed to find latest access for %s: %+v", profiles[i].UserID, err)
			return nil, err
		}

		var lastAccess *time.Time
		if lastLog != nil {
			lastAccess = &lastLog.CreatedAt
		}

		patients = append(patients, converter.ProfileToPatientListItem(&profiles[i], lastAccess, now))
	}

	return &dto.PatientListResponse{
		Patients:   patients,
		TotalCount: len(patients),
	}, nil
}

func (u *dashboardUsecase) GetPatientDashboard(ctx context.Context, userID uuid.UUID) (*dto.PatientDashboardResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := u.profileRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find medical profile: %+v", err)
		return nil, err
	}

	resp := &dto.PatientDashboardResponse{
		User: dto.DashboardUser{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
			UserType: entity.RolePatient,
		},
		LastAccessed: "Never",
	}

	if profile != nil {
		resp.Profile = &dto.DashboardProfile{
			ID:                   profile.ID.String(),
			FullName:             profile.FullName,
			DateOfBirth:          profile.DateOfBirth,
			BloodType:            profile.BloodType,
			QRGenerated:          profile.QRCodeURL != "",
			CompletionPercentage: converter.ProfileCompletion(profile),
		}

		lastLog, err := u.accessLogRepo.FindLatestByUserID(ctx, u.db, userID)
		if err != nil {
			u.log.Warnf("Failed to find latest access: %+v", err)
			return nil, err
		}
		if lastLog != nil {
			resp.LastAccessed = converter.FormatLastAccessed(&lastLog.CreatedAt, time.Now())
		}
	}

	return resp, nil
}

func (u *dashboardUsecase) GetDoctorDashboard(ctx context.Context, userID uuid.UUID) (*dto.DoctorDashboardResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil || user.RoleID != entity.RoleIDDoctor {
		return nil, ErrDoctorNotFound
	}

	doctorProfile, err := u.doctorProfileRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}

	resp := &dto.DoctorDashboardResponse{
		User: dto.DashboardUser{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
			UserType: entity.RoleDoctor,
		},
	}

	if doctorProfile != nil {
		resp.Doctor = &dto.DashboardDoctorProfile{
			HospitalName: doctorProfile.HospitalName,
			Specialty:    doctorProfile.Specialty,
			IsVerified:   doctorProfile.IsVerified,
		}
	}

	return resp, nil
}
