package services

import (
	"gorm.io/gorm"

	"github.com/mactanair/airline-backend/internal/models"
)

type CityInput struct {
	Name        string            `json:"name" binding:"required"`
	AirportName string            `json:"airport_name" binding:"required"`
	AirportCode string            `json:"airport_code" binding:"required"`
	Status      models.CityStatus `json:"status" binding:"required,oneof=active inactive"`
}

type CityService interface {
	Create(in CityInput) (*models.City, error)
	Get(id uint) (*models.City, error)
	List() ([]models.City, error)
	Update(id uint, in CityInput) (*models.City, error)
	Delete(id uint) error
}

type cityService struct {
	db *gorm.DB
}

func NewCityService(db *gorm.DB) CityService {
	return &cityService{db: db}
}

var _ CityService = (*cityService)(nil)

func (s *cityService) Create(in CityInput) (*models.City, error) {
	city := models.City{
		Name:        in.Name,
		AirportName: in.AirportName,
		AirportCode: in.AirportCode,
		Status:      in.Status,
	}
	if err := city.Validate(); err != nil {
		return nil, invalid("%v", err)
	}
	if err := s.db.Create(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (s *cityService) Get(id uint) (*models.City, error) {
	var city models.City
	if err := s.db.First(&city, id).Error; err != nil {
		return nil, translate(err)
	}
	return &city, nil
}

func (s *cityService) List() ([]models.City, error) {
	var cities []models.City
	if err := s.db.Order("id").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// Update applies full replacement semantics: every field comes from the
// payload, there is no merge.
func (s *cityService) Update(id uint, in CityInput) (*models.City, error) {
	var city models.City
	if err := s.db.First(&city, id).Error; err != nil {
		return nil, translate(err)
	}
	city.Name = in.Name
	city.AirportName = in.AirportName
	city.AirportCode = in.AirportCode
	city.Status = in.Status
	if err := city.Validate(); err != nil {
		return nil, invalid("%v", err)
	}
	if err := s.db.Save(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

// Delete rejects cities that still have flights instead of cascading.
func (s *cityService) Delete(id uint) error {
	var city models.City
	if err := s.db.First(&city, id).Error; err != nil {
		return translate(err)
	}

	var flights int64
	if err := s.db.Model(&models.Flight{}).
		Where("origin_id = ? OR destination_id = ?", id, id).
		Count(&flights).Error; err != nil {
		return err
	}
	if flights > 0 {
		return ErrCityInUse
	}

	return s.db.Delete(&city).Error
}
