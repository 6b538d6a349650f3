package service_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"quiz_master_backend/internal/config"
	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db *gorm.DB

	users     *repository.UserRepository
	subjects  *repository.SubjectRepository
	chapters  *repository.ChapterRepository
	quizzes   *repository.QuizRepository
	questions *repository.QuestionRepository
	scores    *repository.ScoreRepository

	auth      *service.AuthService
	catalog   *service.CatalogService
	quiz      *service.QuizService
	scoring   *service.ScoringService
	user      *service.UserService
	report    *service.ReportService
	dashboard *service.DashboardService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Chapter{},
		&model.Quiz{},
		&model.Question{},
		&model.Score{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
	}

	env := &testEnv{
		db:        db,
		users:     repository.NewUserRepository(db),
		subjects:  repository.NewSubjectRepository(db),
		chapters:  repository.NewChapterRepository(db),
		quizzes:   repository.NewQuizRepository(db),
		questions: repository.NewQuestionRepository(db),
		scores:    repository.NewScoreRepository(db),
	}
	env.auth = service.NewAuthService(env.users, cfg)
	env.catalog = service.NewCatalogService(env.subjects, env.chapters)
	env.quiz = service.NewQuizService(env.quizzes, env.chapters, env.questions)
	env.scoring = service.NewScoringService(env.quizzes, env.questions, env.scores)
	env.user = service.NewUserService(env.users)
	env.report = service.NewReportService(env.scores, env.subjects, env.users, nil)
	env.dashboard = service.NewDashboardService(env.users, env.subjects, env.chapters, env.quizzes, env.scores)

	return env
}

func createUser(t *testing.T, env *testEnv, email string, role model.UserRole) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		Email:    email,
		FullName: "Test " + email,
		Password: string(hashed),
		Role:     role,
	}
	if err := env.users.Create(user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

// createQuiz builds a subject/chapter/quiz chain and attaches questions
// whose correct options are given in order.
func createQuiz(t *testing.T, env *testEnv, correctOptions ...int) (*model.Quiz, []model.Question) {
	t.Helper()

	subject, err := env.catalog.CreateSubject(service.SubjectRequest{Name: "Math"})
	if err != nil {
		t.Fatalf("CreateSubject() error = %v", err)
	}
	chapter, err := env.catalog.CreateChapter(service.ChapterRequest{SubjectID: subject.ID, Name: "Algebra"})
	if err != nil {
		t.Fatalf("CreateChapter() error = %v", err)
	}
	quiz, err := env.quiz.CreateQuiz(service.QuizRequest{
		ChapterID:    chapter.ID,
		Title:        "Basics",
		DateOfQuiz:   "2025-06-01",
		TimeDuration: 30,
	})
	if err != nil {
		t.Fatalf("CreateQuiz() error = %v", err)
	}

	questions := make([]model.Question, 0, len(correctOptions))
	for i, correct := range correctOptions {
		q, err := env.quiz.CreateQuestion(quiz.ID, service.QuestionRequest{
			QuestionStatement: fmt.Sprintf("Question %d", i+1),
			Option1:           fmt.Sprintf("Q%d option one", i+1),
			Option2:           fmt.Sprintf("Q%d option two", i+1),
			Option3:           fmt.Sprintf("Q%d option three", i+1),
			Option4:           fmt.Sprintf("Q%d option four", i+1),
			CorrectOption:     correct,
		})
		if err != nil {
			t.Fatalf("CreateQuestion() error = %v", err)
		}
		questions = append(questions, *q)
	}
	return quiz, questions
}

func questionKey(q *model.Question) string {
	return strconv.FormatUint(uint64(q.ID), 10)
}

func countRows(t *testing.T, env *testEnv, m interface{}) int64 {
	t.Helper()

	var count int64
	if err := env.db.Model(m).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
