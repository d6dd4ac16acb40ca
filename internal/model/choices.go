package model

// 领域编码的封闭集合。单字符编码与数据库存储值一致。

// ── 性别 ──

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

// ── 兵役状态 ──

type MilitaryService string

const (
	MilitaryApplicable    MilitaryService = "A" // 需服役
	MilitaryNotApplicable MilitaryService = "N" // 不适用
	MilitaryExempt        MilitaryService = "E" // 免服役
)

func (m MilitaryService) Valid() bool {
	switch m {
	case MilitaryApplicable, MilitaryNotApplicable, MilitaryExempt:
		return true
	}
	return false
}

// ── 教授职级 ──

type ProfessorRank string

const (
	RankAssistant ProfessorRank = "C" // 助理教授
	RankAssociate ProfessorRank = "B" // 副教授
	RankFull      ProfessorRank = "A" // 正教授
)

func (r ProfessorRank) Valid() bool {
	switch r {
	case RankAssistant, RankAssociate, RankFull:
		return true
	}
	return false
}

// ── 学生学籍状态 ──

type StudentStatus string

const (
	StudentStatusStudying   StudentStatus = "S" // 在读
	StudentStatusDismissal  StudentStatus = "D" // 退学处分
	StudentStatusWithdrawal StudentStatus = "W" // 主动退学
	StudentStatusGraduated  StudentStatus = "G" // 毕业
)

func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusStudying, StudentStatusDismissal, StudentStatusWithdrawal, StudentStatusGraduated:
		return true
	}
	return false
}

// Active 在读学生才占用国民身份号的唯一性
func (s StudentStatus) Active() bool { return s == StudentStatusStudying }

// ── 学期季别 ──

type AcademicSemester string

const (
	SemesterAutumn AcademicSemester = "A"
	SemesterWinter AcademicSemester = "W"
	SemesterSummer AcademicSemester = "S"
)

func (a AcademicSemester) Valid() bool {
	switch a {
	case SemesterAutumn, SemesterWinter, SemesterSummer:
		return true
	}
	return false
}

// ── 学分类型 ──

type UnitType string

const (
	UnitTheory    UnitType = "T"
	UnitPractical UnitType = "P"
)

func (u UnitType) Valid() bool { return u == UnitTheory || u == UnitPractical }

// ── 课程分类（按培养方案） ──

type CourseClassification string

const (
	CourseGeneral     CourseClassification = "G"
	CourseSpecialized CourseClassification = "S"
	CourseOptional    CourseClassification = "O"
	CourseBasic       CourseClassification = "B"
)

func (c CourseClassification) Valid() bool {
	switch c {
	case CourseGeneral, CourseSpecialized, CourseOptional, CourseBasic:
		return true
	}
	return false
}

// ── 选课记录状态 ──

type AttemptStatus string

const (
	AttemptNotTaken AttemptStatus = "N"
	AttemptStudying AttemptStatus = "S"
	AttemptPassed   AttemptStatus = "P"
	AttemptFailed   AttemptStatus = "F"
)

func (a AttemptStatus) Valid() bool {
	switch a {
	case AttemptNotTaken, AttemptStudying, AttemptPassed, AttemptFailed:
		return true
	}
	return false
}

// CountsForGPA 仅通过 / 未通过的记录计入绩点
func (a AttemptStatus) CountsForGPA() bool { return a == AttemptPassed || a == AttemptFailed }

// ── 学期成绩状态 ──

type StudentSemesterStatus string

const (
	SemesterOngoing      StudentSemesterStatus = "ONG"
	SemesterPassed       StudentSemesterStatus = "PAS"
	SemesterFailed       StudentSemesterStatus = "FAI"
	SemesterWithdrawnExc StudentSemesterStatus = "WWS" // 有理由退课（计入学期数）
	SemesterWithdrawnNo  StudentSemesterStatus = "WNO" // 无理由退课
	SemesterUnknown      StudentSemesterStatus = "UNK"
)

func (s StudentSemesterStatus) Valid() bool {
	switch s {
	case SemesterOngoing, SemesterPassed, SemesterFailed, SemesterWithdrawnExc, SemesterWithdrawnNo, SemesterUnknown:
		return true
	}
	return false
}

// CountsAsUsedHalfYear 计入已用学期数的状态
func (s StudentSemesterStatus) CountsAsUsedHalfYear() bool {
	switch s {
	case SemesterPassed, SemesterFailed, SemesterWithdrawnExc:
		return true
	}
	return false
}

// ── 学位层级 ──

type AcademicLevel string

const (
	LevelBachelor  AcademicLevel = "B"
	LevelMaster    AcademicLevel = "M"
	LevelDoctorate AcademicLevel = "D"
)

func (l AcademicLevel) Valid() bool {
	switch l {
	case LevelBachelor, LevelMaster, LevelDoctorate:
		return true
	}
	return false
}

// ── 星期 ──

type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// ── 上课时间块（6 个两小时段） ──

type TimeBlock string

const (
	Block7To9   TimeBlock = "7_9"
	Block9To11  TimeBlock = "9_11"
	Block11To13 TimeBlock = "11_13"
	Block13To15 TimeBlock = "13_15"
	Block15To17 TimeBlock = "15_17"
	Block17To19 TimeBlock = "17_19"
)

func (t TimeBlock) Valid() bool {
	switch t {
	case Block7To9, Block9To11, Block11To13, Block13To15, Block15To17, Block17To19:
		return true
	}
	return false
}

// StartHour 时间块起始小时，用于日历导出
func (t TimeBlock) StartHour() int {
	switch t {
	case Block7To9:
		return 7
	case Block9To11:
		return 9
	case Block11To13:
		return 11
	case Block13To15:
		return 13
	case Block15To17:
		return 15
	case Block17To19:
		return 17
	}
	return 0
}
