package service

import (
	"context"

	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
)

// StudentService serves the student roster.
type StudentService struct {
	students repository.StudentRepository
}

// NewStudentService constructs the service.
func NewStudentService(students repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

// List returns students matching the filter in insertion order.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	return s.students.List(ctx, filter)
}

// Get fetches a single student.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.FindByID(ctx, id)
}
