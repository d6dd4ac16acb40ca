package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/internal/model"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
)

// ── Mock AccountRepository ──

type mockAccountRepo struct {
	nextID       uint
	accounts     map[uint]*model.Account
	capabilities map[uint][]string
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{
		nextID:       1,
		accounts:     make(map[uint]*model.Account),
		capabilities: make(map[uint][]string),
	}
}

func (m *mockAccountRepo) Create(_ context.Context, account *model.Account) error {
	if account.ID == 0 {
		account.ID = m.nextID
		m.nextID++
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id uint) (*model.Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) GetByUsername(_ context.Context, username string) (*model.Account, error) {
	for _, a := range m.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) Update(_ context.Context, account *model.Account) error {
	m.accounts[account.ID] = account
	return nil
}

func (m *mockAccountRepo) Delete(_ context.Context, id uint) error {
	delete(m.accounts, id)
	return nil
}

func (m *mockAccountRepo) Capabilities(_ context.Context, accountID uint) ([]string, error) {
	return m.capabilities[accountID], nil
}

func (m *mockAccountRepo) GrantCapabilities(_ context.Context, accountID uint, capabilities []string) error {
	existing := make(map[string]bool)
	for _, c := range m.capabilities[accountID] {
		existing[c] = true
	}
	for _, c := range capabilities {
		if !existing[c] {
			m.capabilities[accountID] = append(m.capabilities[accountID], c)
		}
	}
	return nil
}

func (m *mockAccountRepo) RevokeCapability(_ context.Context, accountID uint, capability string) error {
	kept := m.capabilities[accountID][:0]
	for _, c := range m.capabilities[accountID] {
		if c != capability {
			kept = append(kept, c)
		}
	}
	m.capabilities[accountID] = kept
	return nil
}

// ── Mock FacultyRepository ──

type mockFacultyRepo struct {
	nextID    uint
	faculties map[uint]*model.Faculty
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{nextID: 1, faculties: make(map[uint]*model.Faculty)}
}

func (m *mockFacultyRepo) Create(_ context.Context, faculty *model.Faculty) error {
	if faculty.ID == 0 {
		faculty.ID = m.nextID
		m.nextID++
	}
	m.faculties[faculty.ID] = faculty
	return nil
}

func (m *mockFacultyRepo) GetByID(_ context.Context, id uint) (*model.Faculty, error) {
	if f, ok := m.faculties[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) GetByName(_ context.Context, name string) (*model.Faculty, error) {
	for _, id := range sortedKeys(m.faculties) {
		if m.faculties[id].Name == name {
			return m.faculties[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) List(_ context.Context, offset, limit int) ([]model.Faculty, int64, error) {
	var result []model.Faculty
	for _, id := range sortedKeys(m.faculties) {
		result = append(result, *m.faculties[id])
	}
	return page(result, offset, limit), int64(len(m.faculties)), nil
}

func (m *mockFacultyRepo) Update(_ context.Context, faculty *model.Faculty) error {
	m.faculties[faculty.ID] = faculty
	return nil
}

func (m *mockFacultyRepo) Delete(_ context.Context, id uint) error {
	delete(m.faculties, id)
	return nil
}

// ── Mock FacultyGroupRepository ──

type mockFacultyGroupRepo struct {
	nextID uint
	groups map[uint]*model.FacultyGroup
}

func newMockFacultyGroupRepo() *mockFacultyGroupRepo {
	return &mockFacultyGroupRepo{nextID: 1, groups: make(map[uint]*model.FacultyGroup)}
}

func (m *mockFacultyGroupRepo) Create(_ context.Context, group *model.FacultyGroup) error {
	if group.ID == 0 {
		group.ID = m.nextID
		m.nextID++
	}
	m.groups[group.ID] = group
	return nil
}

func (m *mockFacultyGroupRepo) GetByID(_ context.Context, id uint) (*model.FacultyGroup, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyGroupRepo) List(_ context.Context, offset, limit int) ([]model.FacultyGroup, int64, error) {
	var result []model.FacultyGroup
	for _, id := range sortedKeys(m.groups) {
		result = append(result, *m.groups[id])
	}
	return page(result, offset, limit), int64(len(m.groups)), nil
}

func (m *mockFacultyGroupRepo) Update(_ context.Context, group *model.FacultyGroup) error {
	m.groups[group.ID] = group
	return nil
}

func (m *mockFacultyGroupRepo) Delete(_ context.Context, id uint) error {
	delete(m.groups, id)
	return nil
}

// ── Mock FieldOfStudyRepository ──

type mockFieldOfStudyRepo struct {
	nextID uint
	fields map[uint]*model.FieldOfStudy
}

func newMockFieldOfStudyRepo() *mockFieldOfStudyRepo {
	return &mockFieldOfStudyRepo{nextID: 1, fields: make(map[uint]*model.FieldOfStudy)}
}

func (m *mockFieldOfStudyRepo) Create(_ context.Context, field *model.FieldOfStudy) error {
	if field.ID == 0 {
		field.ID = m.nextID
		m.nextID++
	}
	m.fields[field.ID] = field
	return nil
}

func (m *mockFieldOfStudyRepo) GetByID(_ context.Context, id uint) (*model.FieldOfStudy, error) {
	if f, ok := m.fields[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFieldOfStudyRepo) List(_ context.Context, offset, limit int) ([]model.FieldOfStudy, int64, error) {
	var result []model.FieldOfStudy
	for _, id := range sortedKeys(m.fields) {
		result = append(result, *m.fields[id])
	}
	return page(result, offset, limit), int64(len(m.fields)), nil
}

func (m *mockFieldOfStudyRepo) Update(_ context.Context, field *model.FieldOfStudy) error {
	m.fields[field.ID] = field
	return nil
}

func (m *mockFieldOfStudyRepo) Delete(_ context.Context, id uint) error {
	delete(m.fields, id)
	return nil
}

// ── Mock AcademicFieldRepository ──

type mockAcademicFieldRepo struct {
	nextID uint
	fields map[uint]*model.AcademicField
}

func newMockAcademicFieldRepo() *mockAcademicFieldRepo {
	return &mockAcademicFieldRepo{nextID: 1, fields: make(map[uint]*model.AcademicField)}
}

func (m *mockAcademicFieldRepo) Create(_ context.Context, field *model.AcademicField) error {
	if field.ID == 0 {
		field.ID = m.nextID
		m.nextID++
	}
	m.fields[field.ID] = field
	return nil
}

func (m *mockAcademicFieldRepo) GetByID(_ context.Context, id uint) (*model.AcademicField, error) {
	if f, ok := m.fields[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAcademicFieldRepo) List(_ context.Context, offset, limit int) ([]model.AcademicField, int64, error) {
	var result []model.AcademicField
	for _, id := range sortedKeys(m.fields) {
		result = append(result, *m.fields[id])
	}
	return page(result, offset, limit), int64(len(m.fields)), nil
}

func (m *mockAcademicFieldRepo) Update(_ context.Context, field *model.AcademicField) error {
	m.fields[field.ID] = field
	return nil
}

func (m *mockAcademicFieldRepo) Delete(_ context.Context, id uint) error {
	delete(m.fields, id)
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	nextID  uint
	courses map[uint]*model.Course

	// courseID → 依赖课程 ID 列表
	prereq map[uint][]uint
	coreq  map[uint][]uint
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{
		nextID:  1,
		courses: make(map[uint]*model.Course),
		prereq:  make(map[uint][]uint),
		coreq:   make(map[uint][]uint),
	}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.ID == 0 {
		course.ID = m.nextID
		m.nextID++
	}
	m.courses[course.ID] = course
	for _, p := range course.Prerequisites {
		m.prereq[course.ID] = append(m.prereq[course.ID], p.ID)
	}
	for _, co := range course.Corequisites {
		m.coreq[course.ID] = append(m.coreq[course.ID], co.ID)
	}
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c.Prerequisites = nil
	for _, pid := range m.prereq[id] {
		if p, ok := m.courses[pid]; ok {
			c.Prerequisites = append(c.Prerequisites, *p)
		}
	}
	c.Corequisites = nil
	for _, cid := range m.coreq[id] {
		if co, ok := m.courses[cid]; ok {
			c.Corequisites = append(c.Corequisites, *co)
		}
	}
	return c, nil
}

func (m *mockCourseRepo) GetByCode(_ context.Context, code string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context, offset, limit int) ([]model.Course, int64, error) {
	var result []model.Course
	for _, id := range sortedKeys(m.courses) {
		result = append(result, *m.courses[id])
	}
	return page(result, offset, limit), int64(len(m.courses)), nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id uint) error {
	delete(m.courses, id)
	delete(m.prereq, id)
	delete(m.coreq, id)
	return nil
}

func (m *mockCourseRepo) ReplacePrerequisites(_ context.Context, course *model.Course, prerequisites []model.Course) error {
	ids := make([]uint, 0, len(prerequisites))
	for _, p := range prerequisites {
		ids = append(ids, p.ID)
	}
	m.prereq[course.ID] = ids
	return nil
}

func (m *mockCourseRepo) ReplaceCorequisites(_ context.Context, course *model.Course, corequisites []model.Course) error {
	ids := make([]uint, 0, len(corequisites))
	for _, c := range corequisites {
		ids = append(ids, c.ID)
	}
	m.coreq[course.ID] = ids
	return nil
}

func (m *mockCourseRepo) PrerequisiteEdges(_ context.Context) (map[uint][]uint, error) {
	return copyEdges(m.prereq), nil
}

func (m *mockCourseRepo) CorequisiteEdges(_ context.Context) (map[uint][]uint, error) {
	return copyEdges(m.coreq), nil
}

// ── Mock CourseTypeRepository ──

type mockCourseTypeRepo struct {
	nextID uint
	types  map[uint]*model.CourseType
}

func newMockCourseTypeRepo() *mockCourseTypeRepo {
	return &mockCourseTypeRepo{nextID: 1, types: make(map[uint]*model.CourseType)}
}

func (m *mockCourseTypeRepo) Create(_ context.Context, courseType *model.CourseType) error {
	if courseType.ID == 0 {
		courseType.ID = m.nextID
		m.nextID++
	}
	m.types[courseType.ID] = courseType
	return nil
}

func (m *mockCourseTypeRepo) GetByID(_ context.Context, id uint) (*model.CourseType, error) {
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseTypeRepo) List(_ context.Context, offset, limit int) ([]model.CourseType, int64, error) {
	var result []model.CourseType
	for _, id := range sortedKeys(m.types) {
		result = append(result, *m.types[id])
	}
	return page(result, offset, limit), int64(len(m.types)), nil
}

func (m *mockCourseTypeRepo) Update(_ context.Context, courseType *model.CourseType) error {
	m.types[courseType.ID] = courseType
	return nil
}

func (m *mockCourseTypeRepo) Delete(_ context.Context, id uint) error {
	delete(m.types, id)
	return nil
}

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	nextID    uint
	semesters map[uint]*model.Semester
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{nextID: 1, semesters: make(map[uint]*model.Semester)}
}

func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	if semester.ID == 0 {
		semester.ID = m.nextID
		m.nextID++
	}
	m.semesters[semester.ID] = semester
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id uint) (*model.Semester, error) {
	if s, ok := m.semesters[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(_ context.Context, offset, limit int) ([]model.Semester, int64, error) {
	var result []model.Semester
	for _, id := range sortedKeys(m.semesters) {
		result = append(result, *m.semesters[id])
	}
	return page(result, offset, limit), int64(len(m.semesters)), nil
}

func (m *mockSemesterRepo) Update(_ context.Context, semester *model.Semester) error {
	m.semesters[semester.ID] = semester
	return nil
}

func (m *mockSemesterRepo) Delete(_ context.Context, id uint) error {
	delete(m.semesters, id)
	return nil
}

func (m *mockSemesterRepo) ListContaining(_ context.Context, now time.Time) ([]model.Semester, error) {
	var result []model.Semester
	for _, id := range sortedKeys(m.semesters) {
		s := m.semesters[id]
		if !now.Before(s.StartCourseRegistration) && !now.After(s.EndSemesterDate) {
			result = append(result, *s)
		}
	}
	return result, nil
}

// ── Mock SemesterCourseRepository ──

type mockSemesterCourseRepo struct {
	nextID  uint
	courses map[uint]*model.SemesterCourse
}

func newMockSemesterCourseRepo() *mockSemesterCourseRepo {
	return &mockSemesterCourseRepo{nextID: 1, courses: make(map[uint]*model.SemesterCourse)}
}

func (m *mockSemesterCourseRepo) Create(_ context.Context, sc *model.SemesterCourse) error {
	if sc.ID == 0 {
		sc.ID = m.nextID
		m.nextID++
	}
	m.courses[sc.ID] = sc
	return nil
}

func (m *mockSemesterCourseRepo) GetByID(_ context.Context, id uint) (*model.SemesterCourse, error) {
	if sc, ok := m.courses[id]; ok {
		return sc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterCourseRepo) List(_ context.Context, offset, limit int) ([]model.SemesterCourse, int64, error) {
	var result []model.SemesterCourse
	for _, id := range sortedKeys(m.courses) {
		result = append(result, *m.courses[id])
	}
	return page(result, offset, limit), int64(len(m.courses)), nil
}

func (m *mockSemesterCourseRepo) ListBySemester(_ context.Context, semesterID uint) ([]model.SemesterCourse, error) {
	var result []model.SemesterCourse
	for _, id := range sortedKeys(m.courses) {
		if m.courses[id].SemesterID == semesterID {
			result = append(result, *m.courses[id])
		}
	}
	return result, nil
}

func (m *mockSemesterCourseRepo) ListByProfessorAndSemester(_ context.Context, professorID, semesterID uint) ([]model.SemesterCourse, error) {
	var result []model.SemesterCourse
	for _, id := range sortedKeys(m.courses) {
		sc := m.courses[id]
		if sc.SemesterID == semesterID && sc.ProfessorID != nil && *sc.ProfessorID == professorID {
			result = append(result, *sc)
		}
	}
	return result, nil
}

func (m *mockSemesterCourseRepo) Update(_ context.Context, sc *model.SemesterCourse) error {
	m.courses[sc.ID] = sc
	return nil
}

func (m *mockSemesterCourseRepo) Delete(_ context.Context, id uint) error {
	delete(m.courses, id)
	return nil
}

// ── Mock ClassSessionRepository ──

type mockClassSessionRepo struct {
	nextID   uint
	sessions map[uint]*model.ClassSession

	// 模拟选课连接，由 newMocks 关联
	studentCourses *mockStudentCourseRepo
}

func newMockClassSessionRepo() *mockClassSessionRepo {
	return &mockClassSessionRepo{
		nextID:   1,
		sessions: make(map[uint]*model.ClassSession),
	}
}

func (m *mockClassSessionRepo) Create(_ context.Context, session *model.ClassSession) error {
	if session.ID == 0 {
		session.ID = m.nextID
		m.nextID++
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockClassSessionRepo) GetByID(_ context.Context, id uint) (*model.ClassSession, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassSessionRepo) ListBySemesterCourse(_ context.Context, semesterCourseID uint) ([]model.ClassSession, error) {
	var result []model.ClassSession
	for _, id := range sortedKeys(m.sessions) {
		if m.sessions[id].SemesterCourseID == semesterCourseID {
			result = append(result, *m.sessions[id])
		}
	}
	return result, nil
}

func (m *mockClassSessionRepo) List(_ context.Context, offset, limit int) ([]model.ClassSession, int64, error) {
	var result []model.ClassSession
	for _, id := range sortedKeys(m.sessions) {
		result = append(result, *m.sessions[id])
	}
	return page(result, offset, limit), int64(len(m.sessions)), nil
}

func (m *mockClassSessionRepo) Update(_ context.Context, session *model.ClassSession) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *mockClassSessionRepo) Delete(_ context.Context, id uint) error {
	delete(m.sessions, id)
	return nil
}

func (m *mockClassSessionRepo) ListForStudent(_ context.Context, studentID, semesterID uint) ([]model.ClassSession, error) {
	// 仅在读（S）的选课进课表
	studying := make(map[uint]bool)
	if m.studentCourses != nil {
		for _, id := range sortedKeys(m.studentCourses.attempts) {
			a := m.studentCourses.attempts[id]
			if a.StudentID == studentID && a.CourseStatus == model.AttemptStudying {
				studying[a.SemesterCourseID] = true
			}
		}
	}

	var result []model.ClassSession
	for _, id := range sortedKeys(m.sessions) {
		s := m.sessions[id]
		if !studying[s.SemesterCourseID] {
			continue
		}
		if s.SemesterCourse != nil && s.SemesterCourse.SemesterID == semesterID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockClassSessionRepo) ListForProfessor(_ context.Context, professorID, semesterID uint) ([]model.ClassSession, error) {
	var result []model.ClassSession
	for _, id := range sortedKeys(m.sessions) {
		s := m.sessions[id]
		sc := s.SemesterCourse
		if sc != nil && sc.SemesterID == semesterID && sc.ProfessorID != nil && *sc.ProfessorID == professorID {
			result = append(result, *s)
		}
	}
	return result, nil
}

// ── Mock StudentCourseRepository ──

type mockStudentCourseRepo struct {
	nextID   uint
	attempts map[uint]*model.StudentCourse
}

func newMockStudentCourseRepo() *mockStudentCourseRepo {
	return &mockStudentCourseRepo{nextID: 1, attempts: make(map[uint]*model.StudentCourse)}
}

func (m *mockStudentCourseRepo) Create(_ context.Context, attempt *model.StudentCourse) error {
	if attempt.ID == 0 {
		attempt.ID = m.nextID
		m.nextID++
	}
	m.attempts[attempt.ID] = attempt
	return nil
}

func (m *mockStudentCourseRepo) GetByID(_ context.Context, id uint) (*model.StudentCourse, error) {
	if a, ok := m.attempts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentCourseRepo) List(_ context.Context, offset, limit int) ([]model.StudentCourse, int64, error) {
	var result []model.StudentCourse
	for _, id := range sortedKeys(m.attempts) {
		result = append(result, *m.attempts[id])
	}
	return page(result, offset, limit), int64(len(m.attempts)), nil
}

func (m *mockStudentCourseRepo) ListByStudent(_ context.Context, studentID uint) ([]model.StudentCourse, error) {
	var result []model.StudentCourse
	for _, id := range sortedKeys(m.attempts) {
		if m.attempts[id].StudentID == studentID {
			result = append(result, *m.attempts[id])
		}
	}
	return result, nil
}

func (m *mockStudentCourseRepo) ListByStudentAndSemester(_ context.Context, studentID, semesterID uint) ([]model.StudentCourse, error) {
	var result []model.StudentCourse
	for _, id := range sortedKeys(m.attempts) {
		a := m.attempts[id]
		if a.StudentID == studentID && a.SemesterCourse != nil && a.SemesterCourse.SemesterID == semesterID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockStudentCourseRepo) Update(_ context.Context, attempt *model.StudentCourse) error {
	m.attempts[attempt.ID] = attempt
	return nil
}

func (m *mockStudentCourseRepo) Delete(_ context.Context, id uint) error {
	delete(m.attempts, id)
	return nil
}

// ── Mock StudentSemesterRepository ──

type mockStudentSemesterRepo struct {
	nextID  uint
	records map[uint]*model.StudentSemester
}

func newMockStudentSemesterRepo() *mockStudentSemesterRepo {
	return &mockStudentSemesterRepo{nextID: 1, records: make(map[uint]*model.StudentSemester)}
}

func (m *mockStudentSemesterRepo) Create(_ context.Context, record *model.StudentSemester) error {
	if record.ID == 0 {
		record.ID = m.nextID
		m.nextID++
	}
	m.records[record.ID] = record
	return nil
}

func (m *mockStudentSemesterRepo) GetByID(_ context.Context, id uint) (*model.StudentSemester, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentSemesterRepo) GetByStudentAndSemester(_ context.Context, studentID, semesterID uint) (*model.StudentSemester, error) {
	for _, id := range sortedKeys(m.records) {
		r := m.records[id]
		if r.StudentID == studentID && r.SemesterID == semesterID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentSemesterRepo) List(_ context.Context, offset, limit int) ([]model.StudentSemester, int64, error) {
	var result []model.StudentSemester
	for _, id := range sortedKeys(m.records) {
		result = append(result, *m.records[id])
	}
	return page(result, offset, limit), int64(len(m.records)), nil
}

func (m *mockStudentSemesterRepo) ListByStudent(_ context.Context, studentID uint) ([]model.StudentSemester, error) {
	var result []model.StudentSemester
	for _, id := range sortedKeys(m.records) {
		if m.records[id].StudentID == studentID {
			result = append(result, *m.records[id])
		}
	}
	return result, nil
}

func (m *mockStudentSemesterRepo) Update(_ context.Context, record *model.StudentSemester) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockStudentSemesterRepo) Delete(_ context.Context, id uint) error {
	delete(m.records, id)
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	nextID   uint
	students map[uint]*model.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{nextID: 1, students: make(map[uint]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.ID == 0 {
		student.ID = m.nextID
		m.nextID++
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByAccountID(_ context.Context, accountID uint) (*model.Student, error) {
	for _, id := range sortedKeys(m.students) {
		if m.students[id].AccountID == accountID {
			return m.students[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, offset, limit int) ([]model.Student, int64, error) {
	var result []model.Student
	for _, id := range sortedKeys(m.students) {
		result = append(result, *m.students[id])
	}
	return page(result, offset, limit), int64(len(m.students)), nil
}

func (m *mockStudentRepo) ListByFaculty(_ context.Context, facultyID uint, offset, limit int) ([]model.Student, int64, error) {
	var result []model.Student
	for _, id := range sortedKeys(m.students) {
		s := m.students[id]
		if fid := s.ResolveFacultyID(); fid != nil && *fid == facultyID {
			result = append(result, *s)
		}
	}
	return page(result, offset, limit), int64(len(result)), nil
}

func (m *mockStudentRepo) ListByProfessor(_ context.Context, professorID uint) ([]model.Student, error) {
	var result []model.Student
	for _, id := range sortedKeys(m.students) {
		s := m.students[id]
		if s.ProfessorID != nil && *s.ProfessorID == professorID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id uint) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) ExistsActiveWithNationalID(_ context.Context, nationalID string, excludeStudentID uint) (bool, error) {
	for _, s := range m.students {
		if s.ID == excludeStudentID || s.Status != model.StudentStatusStudying {
			continue
		}
		if s.Account != nil && s.Account.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock ProfessorRepository ──

type mockProfessorRepo struct {
	nextID     uint
	professors map[uint]*model.Professor
}

func newMockProfessorRepo() *mockProfessorRepo {
	return &mockProfessorRepo{nextID: 1, professors: make(map[uint]*model.Professor)}
}

func (m *mockProfessorRepo) Create(_ context.Context, professor *model.Professor) error {
	if professor.ID == 0 {
		professor.ID = m.nextID
		m.nextID++
	}
	m.professors[professor.ID] = professor
	return nil
}

func (m *mockProfessorRepo) GetByID(_ context.Context, id uint) (*model.Professor, error) {
	if p, ok := m.professors[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) GetByAccountID(_ context.Context, accountID uint) (*model.Professor, error) {
	for _, id := range sortedKeys(m.professors) {
		if m.professors[id].AccountID == accountID {
			return m.professors[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) List(_ context.Context, offset, limit int) ([]model.Professor, int64, error) {
	var result []model.Professor
	for _, id := range sortedKeys(m.professors) {
		result = append(result, *m.professors[id])
	}
	return page(result, offset, limit), int64(len(m.professors)), nil
}

func (m *mockProfessorRepo) ListByFaculty(_ context.Context, facultyID uint, offset, limit int) ([]model.Professor, int64, error) {
	var result []model.Professor
	for _, id := range sortedKeys(m.professors) {
		p := m.professors[id]
		if fid := p.ResolveFacultyID(); fid != nil && *fid == facultyID {
			result = append(result, *p)
		}
	}
	return page(result, offset, limit), int64(len(result)), nil
}

func (m *mockProfessorRepo) Update(_ context.Context, professor *model.Professor) error {
	m.professors[professor.ID] = professor
	return nil
}

func (m *mockProfessorRepo) Delete(_ context.Context, id uint) error {
	delete(m.professors, id)
	return nil
}

// ── Mock AssistantRepository ──

type mockAssistantRepo struct {
	nextID     uint
	assistants map[uint]*model.Assistant
}

func newMockAssistantRepo() *mockAssistantRepo {
	return &mockAssistantRepo{nextID: 1, assistants: make(map[uint]*model.Assistant)}
}

func (m *mockAssistantRepo) Create(_ context.Context, assistant *model.Assistant) error {
	if assistant.ID == 0 {
		assistant.ID = m.nextID
		m.nextID++
	}
	m.assistants[assistant.ID] = assistant
	return nil
}

func (m *mockAssistantRepo) GetByID(_ context.Context, id uint) (*model.Assistant, error) {
	if a, ok := m.assistants[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssistantRepo) GetByAccountID(_ context.Context, accountID uint) (*model.Assistant, error) {
	for _, id := range sortedKeys(m.assistants) {
		if m.assistants[id].AccountID == accountID {
			return m.assistants[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssistantRepo) List(_ context.Context, offset, limit int) ([]model.Assistant, int64, error) {
	var result []model.Assistant
	for _, id := range sortedKeys(m.assistants) {
		result = append(result, *m.assistants[id])
	}
	return page(result, offset, limit), int64(len(m.assistants)), nil
}

func (m *mockAssistantRepo) ListByFaculty(_ context.Context, facultyID uint, offset, limit int) ([]model.Assistant, int64, error) {
	var result []model.Assistant
	for _, id := range sortedKeys(m.assistants) {
		a := m.assistants[id]
		if a.FacultyID != nil && *a.FacultyID == facultyID {
			result = append(result, *a)
		}
	}
	return page(result, offset, limit), int64(len(result)), nil
}

func (m *mockAssistantRepo) Update(_ context.Context, assistant *model.Assistant) error {
	m.assistants[assistant.ID] = assistant
	return nil
}

func (m *mockAssistantRepo) Delete(_ context.Context, id uint) error {
	delete(m.assistants, id)
	return nil
}

// ── 测试用 Repository 组装 ──

type mocks struct {
	account         *mockAccountRepo
	faculty         *mockFacultyRepo
	facultyGroup    *mockFacultyGroupRepo
	fieldOfStudy    *mockFieldOfStudyRepo
	academicField   *mockAcademicFieldRepo
	course          *mockCourseRepo
	courseType      *mockCourseTypeRepo
	semester        *mockSemesterRepo
	semesterCourse  *mockSemesterCourseRepo
	classSession    *mockClassSessionRepo
	studentCourse   *mockStudentCourseRepo
	studentSemester *mockStudentSemesterRepo
	student         *mockStudentRepo
	professor       *mockProfessorRepo
	assistant       *mockAssistantRepo
}

func newMocks() *mocks {
	m := &mocks{
		account:         newMockAccountRepo(),
		faculty:         newMockFacultyRepo(),
		facultyGroup:    newMockFacultyGroupRepo(),
		fieldOfStudy:    newMockFieldOfStudyRepo(),
		academicField:   newMockAcademicFieldRepo(),
		course:          newMockCourseRepo(),
		courseType:      newMockCourseTypeRepo(),
		semester:        newMockSemesterRepo(),
		semesterCourse:  newMockSemesterCourseRepo(),
		classSession:    newMockClassSessionRepo(),
		studentCourse:   newMockStudentCourseRepo(),
		studentSemester: newMockStudentSemesterRepo(),
		student:         newMockStudentRepo(),
		professor:       newMockProfessorRepo(),
		assistant:       newMockAssistantRepo(),
	}
	m.classSession.studentCourses = m.studentCourse
	return m
}

func (m *mocks) repo() *repository.Repository {
	return &repository.Repository{
		Account:         m.account,
		Faculty:         m.faculty,
		FacultyGroup:    m.facultyGroup,
		FieldOfStudy:    m.fieldOfStudy,
		AcademicField:   m.academicField,
		Course:          m.course,
		CourseType:      m.courseType,
		Semester:        m.semester,
		SemesterCourse:  m.semesterCourse,
		ClassSession:    m.classSession,
		StudentCourse:   m.studentCourse,
		StudentSemester: m.studentSemester,
		Student:         m.student,
		Professor:       m.professor,
		Assistant:       m.assistant,
	}
}

// ── 公共辅助 ──

func sortedKeys[V any](m map[uint]*V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func copyEdges(src map[uint][]uint) map[uint][]uint {
	dst := make(map[uint][]uint, len(src))
	for k, v := range src {
		dst[k] = append([]uint(nil), v...)
	}
	return dst
}
