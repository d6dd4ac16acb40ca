package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mahdi-Salimi/university-management-system/config"
	"github.com/Mahdi-Salimi/university-management-system/internal/api/handler"
	"github.com/Mahdi-Salimi/university-management-system/internal/api/middleware"
	"github.com/Mahdi-Salimi/university-management-system/internal/authz"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
	"github.com/Mahdi-Salimi/university-management-system/pkg/jwt"
	"github.com/Mahdi-Salimi/university-management-system/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录与改密走限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
			auth.POST("/change-password-request", middleware.RateLimit(rdb, 5, time.Minute), h.Auth.RequestPasswordChange)
			auth.POST("/change-password-verify", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.VerifyPasswordChange)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, repo))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 学院
			faculties := authorized.Group("/faculties")
			{
				faculties.GET("", middleware.RequireCapability(authz.ResourceFaculty, authz.ActionView), h.Hierarchy.ListFaculties)
				faculties.GET("/:id", middleware.RequireCapability(authz.ResourceFaculty, authz.ActionView), h.Hierarchy.GetFaculty)
				faculties.POST("", middleware.RequireCapability(authz.ResourceFaculty, authz.ActionAdd), h.Hierarchy.CreateFaculty)
				faculties.PUT("/:id", middleware.RequireCapability(authz.ResourceFaculty, authz.ActionChange), h.Hierarchy.UpdateFaculty)
				faculties.DELETE("/:id", middleware.RequireCapability(authz.ResourceFaculty, authz.ActionDelete), h.Hierarchy.DeleteFaculty)
			}

			// 学院组
			facultyGroups := authorized.Group("/faculty-groups")
			{
				facultyGroups.GET("", middleware.RequireCapability(authz.ResourceFacultyGroup, authz.ActionView), h.Hierarchy.ListFacultyGroups)
				facultyGroups.GET("/:id", middleware.RequireCapability(authz.ResourceFacultyGroup, authz.ActionView), h.Hierarchy.GetFacultyGroup)
				facultyGroups.POST("", middleware.RequireCapability(authz.ResourceFacultyGroup, authz.ActionAdd), h.Hierarchy.CreateFacultyGroup)
				facultyGroups.PUT("/:id", middleware.RequireCapability(authz.ResourceFacultyGroup, authz.ActionChange), h.Hierarchy.UpdateFacultyGroup)
				facultyGroups.DELETE("/:id", middleware.RequireCapability(authz.ResourceFacultyGroup, authz.ActionDelete), h.Hierarchy.DeleteFacultyGroup)
			}

			// 专业方向
			fieldsOfStudy := authorized.Group("/fields-of-study")
			{
				fieldsOfStudy.GET("", middleware.RequireCapability(authz.ResourceFieldOfStudy, authz.ActionView), h.Hierarchy.ListFieldsOfStudy)
				fieldsOfStudy.GET("/:id", middleware.RequireCapability(authz.ResourceFieldOfStudy, authz.ActionView), h.Hierarchy.GetFieldOfStudy)
				fieldsOfStudy.POST("", middleware.RequireCapability(authz.ResourceFieldOfStudy, authz.ActionAdd), h.Hierarchy.CreateFieldOfStudy)
				fieldsOfStudy.PUT("/:id", middleware.RequireCapability(authz.ResourceFieldOfStudy, authz.ActionChange), h.Hierarchy.UpdateFieldOfStudy)
				fieldsOfStudy.DELETE("/:id", middleware.RequireCapability(authz.ResourceFieldOfStudy, authz.ActionDelete), h.Hierarchy.DeleteFieldOfStudy)
			}

			// 培养方案
			academicFields := authorized.Group("/academic-fields")
			{
				academicFields.GET("", middleware.RequireCapability(authz.ResourceAcademicField, authz.ActionView), h.Hierarchy.ListAcademicFields)
				academicFields.GET("/:id", middleware.RequireCapability(authz.ResourceAcademicField, authz.ActionView), h.Hierarchy.GetAcademicField)
				academicFields.POST("", middleware.RequireCapability(authz.ResourceAcademicField, authz.ActionAdd), h.Hierarchy.CreateAcademicField)
				academicFields.PUT("/:id", middleware.RequireCapability(authz.ResourceAcademicField, authz.ActionChange), h.Hierarchy.UpdateAcademicField)
				academicFields.DELETE("/:id", middleware.RequireCapability(authz.ResourceAcademicField, authz.ActionDelete), h.Hierarchy.DeleteAcademicField)
			}

			// 课程（含先修 / 共修子资源）
			courses := authorized.Group("/courses")
			{
				courses.GET("", middleware.RequireCapability(authz.ResourceCourse, authz.ActionView), h.Catalog.ListCourses)
				courses.GET("/:id", middleware.RequireCapability(authz.ResourceCourse, authz.ActionView), h.Catalog.GetCourse)
				courses.POST("", middleware.RequireCapability(authz.ResourceCourse, authz.ActionAdd), h.Catalog.CreateCourse)
				courses.PUT("/:id", middleware.RequireCapability(authz.ResourceCourse, authz.ActionChange), h.Catalog.UpdateCourse)
				courses.DELETE("/:id", middleware.RequireCapability(authz.ResourceCourse, authz.ActionDelete), h.Catalog.DeleteCourse)
				courses.GET("/:id/prerequisites", middleware.RequireCapability(authz.ResourceCourse, authz.ActionView), h.Catalog.GetPrerequisites)
				courses.PUT("/:id/prerequisites", middleware.RequireCapability(authz.ResourceCourse, authz.ActionChange), h.Catalog.ReplacePrerequisites)
				courses.GET("/:id/corequisites", middleware.RequireCapability(authz.ResourceCourse, authz.ActionView), h.Catalog.GetCorequisites)
				courses.PUT("/:id/corequisites", middleware.RequireCapability(authz.ResourceCourse, authz.ActionChange), h.Catalog.ReplaceCorequisites)
			}

			// 课程分类
			courseTypes := authorized.Group("/course-types")
			{
				courseTypes.GET("", middleware.RequireCapability(authz.ResourceCourseType, authz.ActionView), h.Catalog.ListCourseTypes)
				courseTypes.GET("/:id", middleware.RequireCapability(authz.ResourceCourseType, authz.ActionView), h.Catalog.GetCourseType)
				courseTypes.POST("", middleware.RequireCapability(authz.ResourceCourseType, authz.ActionAdd), h.Catalog.CreateCourseType)
				courseTypes.PUT("/:id", middleware.RequireCapability(authz.ResourceCourseType, authz.ActionChange), h.Catalog.UpdateCourseType)
				courseTypes.DELETE("/:id", middleware.RequireCapability(authz.ResourceCourseType, authz.ActionDelete), h.Catalog.DeleteCourseType)
			}

			// 学期
			semesters := authorized.Group("/semesters")
			{
				semesters.GET("", middleware.RequireCapability(authz.ResourceSemester, authz.ActionView), h.Semester.ListSemesters)
				semesters.GET("/current", h.Semester.GetCurrentSemester)
				semesters.GET("/:id", middleware.RequireCapability(authz.ResourceSemester, authz.ActionView), h.Semester.GetSemester)
				semesters.POST("", middleware.RequireCapability(authz.ResourceSemester, authz.ActionAdd), h.Semester.CreateSemester)
				semesters.PUT("/:id", middleware.RequireCapability(authz.ResourceSemester, authz.ActionChange), h.Semester.UpdateSemester)
				semesters.DELETE("/:id", middleware.RequireCapability(authz.ResourceSemester, authz.ActionDelete), h.Semester.DeleteSemester)
			}

			// 开课
			semesterCourses := authorized.Group("/semester-courses")
			{
				semesterCourses.GET("", middleware.RequireCapability(authz.ResourceSemesterCourse, authz.ActionView), h.Catalog.ListSemesterCourses)
				semesterCourses.GET("/:id", middleware.RequireCapability(authz.ResourceSemesterCourse, authz.ActionView), h.Catalog.GetSemesterCourse)
				semesterCourses.POST("", middleware.RequireCapability(authz.ResourceSemesterCourse, authz.ActionAdd), h.Catalog.CreateSemesterCourse)
				semesterCourses.PUT("/:id", middleware.RequireCapability(authz.ResourceSemesterCourse, authz.ActionChange), h.Catalog.UpdateSemesterCourse)
				semesterCourses.DELETE("/:id", middleware.RequireCapability(authz.ResourceSemesterCourse, authz.ActionDelete), h.Catalog.DeleteSemesterCourse)
			}

			// 周课时
			classSessions := authorized.Group("/class-sessions")
			{
				classSessions.GET("", middleware.RequireCapability(authz.ResourceClassSession, authz.ActionView), h.Catalog.ListClassSessions)
				classSessions.GET("/:id", middleware.RequireCapability(authz.ResourceClassSession, authz.ActionView), h.Catalog.GetClassSession)
				classSessions.POST("", middleware.RequireCapability(authz.ResourceClassSession, authz.ActionAdd), h.Catalog.CreateClassSession)
				classSessions.PUT("/:id", middleware.RequireCapability(authz.ResourceClassSession, authz.ActionChange), h.Catalog.UpdateClassSession)
				classSessions.DELETE("/:id", middleware.RequireCapability(authz.ResourceClassSession, authz.ActionDelete), h.Catalog.DeleteClassSession)
			}

			// 选课记录（改选时间窗由 Service 层按调用者裁决）
			studentCourses := authorized.Group("/student-courses")
			{
				studentCourses.GET("", middleware.RequireCapability(authz.ResourceStudentCourse, authz.ActionView), h.Enrollment.ListStudentCourses)
				studentCourses.GET("/:id", middleware.RequireCapability(authz.ResourceStudentCourse, authz.ActionView), h.Enrollment.GetStudentCourse)
				studentCourses.POST("", middleware.RequireCapability(authz.ResourceStudentCourse, authz.ActionAdd), h.Enrollment.CreateStudentCourse)
				studentCourses.PUT("/:id", middleware.RequireCapability(authz.ResourceStudentCourse, authz.ActionChange), h.Enrollment.UpdateStudentCourse)
				studentCourses.DELETE("/:id", middleware.RequireCapability(authz.ResourceStudentCourse, authz.ActionDelete), h.Enrollment.DeleteStudentCourse)
			}

			// 学生学期台账
			studentSemesters := authorized.Group("/student-semesters")
			{
				studentSemesters.GET("", middleware.RequireCapability(authz.ResourceStudentSemester, authz.ActionView), h.Enrollment.ListStudentSemesters)
				studentSemesters.GET("/:id", middleware.RequireCapability(authz.ResourceStudentSemester, authz.ActionView), h.Enrollment.GetStudentSemester)
				studentSemesters.POST("", middleware.RequireCapability(authz.ResourceStudentSemester, authz.ActionAdd), h.Enrollment.CreateStudentSemester)
				studentSemesters.PUT("/:id", middleware.RequireCapability(authz.ResourceStudentSemester, authz.ActionChange), h.Enrollment.UpdateStudentSemester)
				studentSemesters.DELETE("/:id", middleware.RequireCapability(authz.ResourceStudentSemester, authz.ActionDelete), h.Enrollment.DeleteStudentSemester)
			}

			// 学生（分级作用域由 Service 层裁决，越权掩蔽为 404）
			students := authorized.Group("/students")
			{
				students.GET("", h.Account.ListStudents)
				students.GET("/:id", h.Account.GetStudent)
				students.POST("", h.Account.CreateStudent)
				students.PUT("/:id", h.Account.UpdateStudent)
				students.DELETE("/:id", h.Account.DeleteStudent)
				students.GET("/:id/gpa", h.Enrollment.GetStudentGPA)
				students.GET("/:id/remaining-half-years", h.Enrollment.GetStudentRemainingHalfYears)
				students.GET("/:id/weekly-schedule", h.Enrollment.GetStudentWeeklySchedule)
				students.GET("/:id/exam-schedule", h.Enrollment.GetStudentExamSchedule)
			}

			// 教授
			professors := authorized.Group("/professors")
			{
				professors.GET("", h.Account.ListProfessors)
				professors.GET("/:id", h.Account.GetProfessor)
				professors.POST("", h.Account.CreateProfessor)
				professors.PUT("/:id", h.Account.UpdateProfessor)
				professors.DELETE("/:id", h.Account.DeleteProfessor)
				professors.GET("/:id/weekly-schedule", h.Enrollment.GetProfessorWeeklySchedule)
			}

			// 教务助理
			assistants := authorized.Group("/assistants")
			{
				assistants.GET("", h.Account.ListAssistants)
				assistants.GET("/:id", h.Account.GetAssistant)
				assistants.POST("", h.Account.CreateAssistant)
				assistants.PUT("/:id", h.Account.UpdateAssistant)
				assistants.DELETE("/:id", h.Account.DeleteAssistant)
			}

			// 能力授权（仅管理员）
			accounts := authorized.Group("/accounts")
			accounts.Use(middleware.RequireStaff())
			{
				accounts.GET("/:id/capabilities", h.Account.ListCapabilities)
				accounts.POST("/:id/capabilities", h.Account.GrantCapabilities)
				accounts.DELETE("/:id/capabilities/:capability", h.Account.RevokeCapability)
			}

			// 导出
			export := authorized.Group("/export")
			{
				export.GET("/transcript/:studentID", h.Export.ExportTranscript)
				export.GET("/schedule/:studentID", h.Export.ExportSchedule)
			}
		}
	}

	return r
}
