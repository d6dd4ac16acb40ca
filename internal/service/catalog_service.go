package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/model"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
)

// ── 课程目录模块业务错误 ──

var (
	ErrCourseNotFound         = errors.New("课程不存在")
	ErrCourseCodeTaken        = errors.New("课程代码已被占用")
	ErrDependencyCycle        = errors.New("先修 / 共修关系不能成环")
	ErrCourseTypeNotFound     = errors.New("课程分类不存在")
	ErrSemesterCourseNotFound = errors.New("开课不存在")
	ErrClassSessionNotFound   = errors.New("周课时不存在")
	ErrExamTimeInvalid        = errors.New("考试时间格式无效，需要 RFC 3339")
	ErrExamTimePast           = errors.New("考试时间不能早于当前时间")
	ErrExamBeforeModification = errors.New("考试时间必须晚于改课截止时间")
)

// CatalogService 课程目录业务接口：课程、课程分类、开课、周课时
type CatalogService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, id uint) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context, page *dto.PaginationRequest) ([]dto.CourseResponse, int64, error)
	UpdateCourse(ctx context.Context, id uint, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id uint) error

	CreateCourseType(ctx context.Context, req *dto.CreateCourseTypeRequest) (*dto.CourseTypeResponse, error)
	GetCourseType(ctx context.Context, id uint) (*dto.CourseTypeResponse, error)
	ListCourseTypes(ctx context.Context, page *dto.PaginationRequest) ([]dto.CourseTypeResponse, int64, error)
	UpdateCourseType(ctx context.Context, id uint, req *dto.UpdateCourseTypeRequest) (*dto.CourseTypeResponse, error)
	DeleteCourseType(ctx context.Context, id uint) error

	CreateSemesterCourse(ctx context.Context, req *dto.CreateSemesterCourseRequest) (*dto.SemesterCourseResponse, error)
	GetSemesterCourse(ctx context.Context, id uint) (*dto.SemesterCourseResponse, error)
	ListSemesterCourses(ctx context.Context, page *dto.PaginationRequest) ([]dto.SemesterCourseResponse, int64, error)
	UpdateSemesterCourse(ctx context.Context, id uint, req *dto.UpdateSemesterCourseRequest) (*dto.SemesterCourseResponse, error)
	DeleteSemesterCourse(ctx context.Context, id uint) error

	CreateClassSession(ctx context.Context, req *dto.CreateClassSessionRequest) (*dto.ClassSessionResponse, error)
	GetClassSession(ctx context.Context, id uint) (*dto.ClassSessionResponse, error)
	ListClassSessions(ctx context.Context, page *dto.PaginationRequest) ([]dto.ClassSessionResponse, int64, error)
	UpdateClassSession(ctx context.Context, id uint, req *dto.UpdateClassSessionRequest) (*dto.ClassSessionResponse, error)
	DeleteClassSession(ctx context.Context, id uint) error
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── 课程 ──────────────────────

func (s *catalogService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if _, err := s.repo.Course.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrCourseCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	prerequisites, err := s.loadCourses(ctx, req.PrerequisiteIDs)
	if err != nil {
		return nil, err
	}
	corequisites, err := s.loadCourses(ctx, req.CorequisiteIDs)
	if err != nil {
		return nil, err
	}

	course := &model.Course{
		Name:          req.Name,
		Code:          req.Code,
		Description:   req.Description,
		FacultyID:     req.FacultyID,
		CourseUnit:    req.CourseUnit,
		UnitType:      model.UnitType(req.UnitType),
		Prerequisites: prerequisites,
		Corequisites:  corequisites,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}
	return s.GetCourse(ctx, course.ID)
}

func (s *catalogService) GetCourse(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *catalogService) ListCourses(ctx context.Context, page *dto.PaginationRequest) ([]dto.CourseResponse, int64, error) {
	courses, total, err := s.repo.Course.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseResponse(&courses[i]))
	}
	return result, total, nil
}

func (s *catalogService) UpdateCourse(ctx context.Context, id uint, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if req.Code != nil && *req.Code != course.Code {
		if _, err := s.repo.Course.GetByCode(ctx, *req.Code); err == nil {
			return nil, ErrCourseCodeTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		course.Code = *req.Code
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.FacultyID != nil {
		course.FacultyID = req.FacultyID
	}
	if req.CourseUnit != nil {
		course.CourseUnit = *req.CourseUnit
	}
	if req.UnitType != nil {
		course.UnitType = model.UnitType(*req.UnitType)
	}

	if req.PrerequisiteIDs != nil {
		if err := s.replaceDependencies(ctx, course, *req.PrerequisiteIDs, true); err != nil {
			return nil, err
		}
	}
	if req.CorequisiteIDs != nil {
		if err := s.replaceDependencies(ctx, course, *req.CorequisiteIDs, false); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("更新课程失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetCourse(ctx, course.ID)
}

func (s *catalogService) DeleteCourse(ctx context.Context, id uint) error {
	if _, err := s.repo.Course.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		s.logger.Error("删除课程失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// loadCourses 按 ID 加载课程，任一不存在整体失败
func (s *catalogService) loadCourses(ctx context.Context, ids []uint) ([]model.Course, error) {
	courses := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		course, err := s.repo.Course.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

// replaceDependencies 以给定集合替换先修（prereq=true）或共修关系，
// 先在全量依赖图上做成环检测
func (s *catalogService) replaceDependencies(ctx context.Context, course *model.Course, ids []uint, prereq bool) error {
	targets, err := s.loadCourses(ctx, ids)
	if err != nil {
		return err
	}

	var edges map[uint][]uint
	if prereq {
		edges, err = s.repo.Course.PrerequisiteEdges(ctx)
	} else {
		edges, err = s.repo.Course.CorequisiteEdges(ctx)
	}
	if err != nil {
		s.logger.Error("加载课程依赖图失败", zap.Error(err))
		return err
	}
	// 本课程的旧出边整体替换，不参与检测
	delete(edges, course.ID)
	for _, target := range targets {
		if model.HasCycle(edges, course.ID, target.ID) {
			return ErrDependencyCycle
		}
		edges[course.ID] = append(edges[course.ID], target.ID)
	}

	if prereq {
		return s.repo.Course.ReplacePrerequisites(ctx, course, targets)
	}
	return s.repo.Course.ReplaceCorequisites(ctx, course, targets)
}

// ────────────────────── 课程分类 ──────────────────────

func (s *catalogService) CreateCourseType(ctx context.Context, req *dto.CreateCourseTypeRequest) (*dto.CourseTypeResponse, error) {
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if _, err := s.repo.AcademicField.GetByID(ctx, req.AcademicFieldID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAcademicFieldNotFound
		}
		return nil, err
	}

	courseType := &model.CourseType{
		CourseType:      model.CourseClassification(req.CourseType),
		CourseID:        req.CourseID,
		AcademicFieldID: req.AcademicFieldID,
	}
	if err := s.repo.CourseType.Create(ctx, courseType); err != nil {
		s.logger.Error("创建课程分类失败", zap.Error(err))
		return nil, err
	}
	return toCourseTypeResponse(courseType), nil
}

func (s *catalogService) GetCourseType(ctx context.Context, id uint) (*dto.CourseTypeResponse, error) {
	courseType, err := s.repo.CourseType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseTypeNotFound
		}
		return nil, err
	}
	return toCourseTypeResponse(courseType), nil
}

func (s *catalogService) ListCourseTypes(ctx context.Context, page *dto.PaginationRequest) ([]dto.CourseTypeResponse, int64, error) {
	courseTypes, total, err := s.repo.CourseType.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出课程分类失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.CourseTypeResponse, 0, len(courseTypes))
	for i := range courseTypes {
		result = append(result, *toCourseTypeResponse(&courseTypes[i]))
	}
	return result, total, nil
}

func (s *catalogService) UpdateCourseType(ctx context.Context, id uint, req *dto.UpdateCourseTypeRequest) (*dto.CourseTypeResponse, error) {
	courseType, err := s.repo.CourseType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseTypeNotFound
		}
		return nil, err
	}
	if req.CourseType != nil {
		courseType.CourseType = model.CourseClassification(*req.CourseType)
	}
	if req.CourseID != nil {
		if _, err := s.repo.Course.GetByID(ctx, *req.CourseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}
		courseType.CourseID = *req.CourseID
	}
	if req.AcademicFieldID != nil {
		if _, err := s.repo.AcademicField.GetByID(ctx, *req.AcademicFieldID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAcademicFieldNotFound
			}
			return nil, err
		}
		courseType.AcademicFieldID = *req.AcademicFieldID
	}
	if err := s.repo.CourseType.Update(ctx, courseType); err != nil {
		s.logger.Error("更新课程分类失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toCourseTypeResponse(courseType), nil
}

func (s *catalogService) DeleteCourseType(ctx context.Context, id uint) error {
	if _, err := s.repo.CourseType.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseTypeNotFound
		}
		return err
	}
	if err := s.repo.CourseType.Delete(ctx, id); err != nil {
		s.logger.Error("删除课程分类失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 开课 ──────────────────────

func (s *catalogService) CreateSemesterCourse(ctx context.Context, req *dto.CreateSemesterCourseRequest) (*dto.SemesterCourseResponse, error) {
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	semester, err := s.repo.Semester.GetByID(ctx, req.SemesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	if req.ProfessorID != nil {
		if _, err := s.repo.Professor.GetByID(ctx, *req.ProfessorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProfessorNotFound
			}
			return nil, err
		}
	}

	examAt, err := time.Parse(time.RFC3339, req.ExamDateTime)
	if err != nil {
		return nil, ErrExamTimeInvalid
	}
	if err := s.checkExamTime(examAt, semester); err != nil {
		return nil, err
	}

	sc := &model.SemesterCourse{
		CourseID:       req.CourseID,
		SemesterID:     req.SemesterID,
		ExamDateTime:   examAt,
		ExamPlace:      req.ExamPlace,
		CourseCapacity: req.CourseCapacity,
		ProfessorID:    req.ProfessorID,
	}
	if err := s.repo.SemesterCourse.Create(ctx, sc); err != nil {
		s.logger.Error("创建开课失败", zap.Error(err))
		return nil, err
	}

	for _, sessionReq := range req.ClassSessions {
		session := &model.ClassSession{
			SemesterCourseID: sc.ID,
			DayOfWeek:        model.Weekday(sessionReq.DayOfWeek),
			TimeBlock:        model.TimeBlock(sessionReq.TimeBlock),
		}
		if err := s.repo.ClassSession.Create(ctx, session); err != nil {
			s.logger.Error("创建周课时失败", zap.Error(err))
			return nil, err
		}
	}

	return s.GetSemesterCourse(ctx, sc.ID)
}

// checkExamTime 考试时间不能落在过去，也不能早于学期的改课截止时间
func (s *catalogService) checkExamTime(examAt time.Time, semester *model.Semester) error {
	if examAt.Before(s.now()) {
		return ErrExamTimePast
	}
	if !examAt.After(semester.EndCourseModification) {
		return ErrExamBeforeModification
	}
	return nil
}

func (s *catalogService) GetSemesterCourse(ctx context.Context, id uint) (*dto.SemesterCourseResponse, error) {
	sc, err := s.repo.SemesterCourse.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterCourseNotFound
		}
		return nil, err
	}
	sessions, err := s.repo.ClassSession.ListBySemesterCourse(ctx, sc.ID)
	if err != nil {
		s.logger.Error("查询周课时失败", zap.Uint("semester_course_id", sc.ID), zap.Error(err))
		return nil, err
	}
	return toSemesterCourseResponse(sc, sessions), nil
}

func (s *catalogService) ListSemesterCourses(ctx context.Context, page *dto.PaginationRequest) ([]dto.SemesterCourseResponse, int64, error) {
	scs, total, err := s.repo.SemesterCourse.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出开课失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.SemesterCourseResponse, 0, len(scs))
	for i := range scs {
		result = append(result, *toSemesterCourseResponse(&scs[i], nil))
	}
	return result, total, nil
}

func (s *catalogService) UpdateSemesterCourse(ctx context.Context, id uint, req *dto.UpdateSemesterCourseRequest) (*dto.SemesterCourseResponse, error) {
	sc, err := s.repo.SemesterCourse.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterCourseNotFound
		}
		return nil, err
	}

	if req.ExamDateTime != nil {
		examAt, err := time.Parse(time.RFC3339, *req.ExamDateTime)
		if err != nil {
			return nil, ErrExamTimeInvalid
		}
		semester := sc.Semester
		if semester == nil {
			semester, err = s.repo.Semester.GetByID(ctx, sc.SemesterID)
			if err != nil {
				return nil, err
			}
		}
		if err := s.checkExamTime(examAt, semester); err != nil {
			return nil, err
		}
		sc.ExamDateTime = examAt
	}
	if req.ExamPlace != nil {
		sc.ExamPlace = *req.ExamPlace
	}
	if req.CourseCapacity != nil {
		sc.CourseCapacity = *req.CourseCapacity
	}
	if req.ProfessorID != nil {
		if _, err := s.repo.Professor.GetByID(ctx, *req.ProfessorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProfessorNotFound
			}
			return nil, err
		}
		sc.ProfessorID = req.ProfessorID
	}

	if err := s.repo.SemesterCourse.Update(ctx, sc); err != nil {
		s.logger.Error("更新开课失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetSemesterCourse(ctx, sc.ID)
}

func (s *catalogService) DeleteSemesterCourse(ctx context.Context, id uint) error {
	if _, err := s.repo.SemesterCourse.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterCourseNotFound
		}
		return err
	}
	if err := s.repo.SemesterCourse.Delete(ctx, id); err != nil {
		s.logger.Error("删除开课失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 周课时 ──────────────────────

func (s *catalogService) CreateClassSession(ctx context.Context, req *dto.CreateClassSessionRequest) (*dto.ClassSessionResponse, error) {
	if _, err := s.repo.SemesterCourse.GetByID(ctx, req.SemesterCourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterCourseNotFound
		}
		return nil, err
	}
	session := &model.ClassSession{
		SemesterCourseID: req.SemesterCourseID,
		DayOfWeek:        model.Weekday(req.DayOfWeek),
		TimeBlock:        model.TimeBlock(req.TimeBlock),
	}
	if err := s.repo.ClassSession.Create(ctx, session); err != nil {
		s.logger.Error("创建周课时失败", zap.Error(err))
		return nil, err
	}
	return toClassSessionResponse(session), nil
}

func (s *catalogService) GetClassSession(ctx context.Context, id uint) (*dto.ClassSessionResponse, error) {
	session, err := s.repo.ClassSession.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassSessionNotFound
		}
		return nil, err
	}
	return toClassSessionResponse(session), nil
}

func (s *catalogService) ListClassSessions(ctx context.Context, page *dto.PaginationRequest) ([]dto.ClassSessionResponse, int64, error) {
	sessions, total, err := s.repo.ClassSession.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("列出周课时失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.ClassSessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, *toClassSessionResponse(&sessions[i]))
	}
	return result, total, nil
}

func (s *catalogService) UpdateClassSession(ctx context.Context, id uint, req *dto.UpdateClassSessionRequest) (*dto.ClassSessionResponse, error) {
	session, err := s.repo.ClassSession.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassSessionNotFound
		}
		return nil, err
	}
	if req.DayOfWeek != nil {
		session.DayOfWeek = model.Weekday(*req.DayOfWeek)
	}
	if req.TimeBlock != nil {
		session.TimeBlock = model.TimeBlock(*req.TimeBlock)
	}
	if err := s.repo.ClassSession.Update(ctx, session); err != nil {
		s.logger.Error("更新周课时失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toClassSessionResponse(session), nil
}

func (s *catalogService) DeleteClassSession(ctx context.Context, id uint) error {
	if _, err := s.repo.ClassSession.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassSessionNotFound
		}
		return err
	}
	if err := s.repo.ClassSession.Delete(ctx, id); err != nil {
		s.logger.Error("删除周课时失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 响应映射 ──────────────────────

func toCourseResponse(m *model.Course) *dto.CourseResponse {
	if m == nil {
		return nil
	}
	prereqIDs := make([]uint, 0, len(m.Prerequisites))
	for i := range m.Prerequisites {
		prereqIDs = append(prereqIDs, m.Prerequisites[i].ID)
	}
	coreqIDs := make([]uint, 0, len(m.Corequisites))
	for i := range m.Corequisites {
		coreqIDs = append(coreqIDs, m.Corequisites[i].ID)
	}
	return &dto.CourseResponse{
		ID:              m.ID,
		Name:            m.Name,
		Code:            m.Code,
		Description:     m.Description,
		Faculty:         toFacultyResponse(m.Faculty),
		CourseUnit:      m.CourseUnit,
		UnitType:        string(m.UnitType),
		PrerequisiteIDs: prereqIDs,
		CorequisiteIDs:  coreqIDs,
	}
}

func toCourseTypeResponse(m *model.CourseType) *dto.CourseTypeResponse {
	if m == nil {
		return nil
	}
	return &dto.CourseTypeResponse{
		ID:              m.ID,
		CourseType:      string(m.CourseType),
		CourseID:        m.CourseID,
		AcademicFieldID: m.AcademicFieldID,
	}
}

func toSemesterCourseResponse(m *model.SemesterCourse, sessions []model.ClassSession) *dto.SemesterCourseResponse {
	if m == nil {
		return nil
	}
	resp := &dto.SemesterCourseResponse{
		ID:             m.ID,
		Course:         toCourseResponse(m.Course),
		ExamDateTime:   m.ExamDateTime.Format(time.RFC3339),
		ExamPlace:      m.ExamPlace,
		CourseCapacity: m.CourseCapacity,
		ProfessorID:    m.ProfessorID,
	}
	if m.Semester != nil {
		resp.Semester = toSemesterResponse(m.Semester)
	}
	for i := range sessions {
		resp.ClassSessions = append(resp.ClassSessions, *toClassSessionResponse(&sessions[i]))
	}
	return resp
}

func toClassSessionResponse(m *model.ClassSession) *dto.ClassSessionResponse {
	if m == nil {
		return nil
	}
	return &dto.ClassSessionResponse{
		ID:               m.ID,
		SemesterCourseID: m.SemesterCourseID,
		DayOfWeek:        string(m.DayOfWeek),
		TimeBlock:        string(m.TimeBlock),
	}
}
