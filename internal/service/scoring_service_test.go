package service_test

import (
	"errors"
	"math"
	"testing"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"
)

func claimsFor(user *model.User) *util.Claims {
	return &util.Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	}
}

func TestScoreSubmissionPercentage(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)
	quiz, questions := createQuiz(t, env, 1, 2, 3)

	// One correct answer out of three questions.
	answers := model.AnswerMap{
		questionKey(&questions[0]): 1,
		questionKey(&questions[1]): 4,
	}
	score, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}

	want := 100.0 / 3.0
	if math.Abs(score.TotalScore-want) > 1e-9 {
		t.Errorf("TotalScore = %v, want %v", score.TotalScore, want)
	}
}

func TestScoreSubmissionEmptyQuiz(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)
	quiz, _ := createQuiz(t, env)

	score, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, model.AnswerMap{})
	if err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}
	if score.TotalScore != 0 {
		t.Errorf("TotalScore = %v, want 0", score.TotalScore)
	}
}

func TestScoreSubmissionUnknownQuiz(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)

	_, err := env.scoring.ScoreSubmission(user.ID, 999, model.AnswerMap{})
	if !errors.Is(err, util.ErrNotFound) {
		t.Errorf("ScoreSubmission() error = %v, want ErrNotFound", err)
	}
}

func TestScoreSubmissionInvalidOption(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)
	quiz, questions := createQuiz(t, env, 1)

	answers := model.AnswerMap{questionKey(&questions[0]): 5}
	_, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, answers)
	if !errors.Is(err, util.ErrValidation) {
		t.Errorf("ScoreSubmission() error = %v, want ErrValidation", err)
	}
	if got := countRows(t, env, &model.Score{}); got != 0 {
		t.Errorf("score rows after rejected submission = %d, want 0", got)
	}
}

func TestScoreAnswersRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)
	quiz, questions := createQuiz(t, env, 2, 1, 4)

	answers := model.AnswerMap{
		questionKey(&questions[0]): 2,
		questionKey(&questions[2]): 4,
	}
	score, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}

	reloaded, err := env.scores.FindByID(score.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(reloaded.Answers) != len(answers) {
		t.Fatalf("reloaded answers = %v, want %v", reloaded.Answers, answers)
	}
	for key, selected := range answers {
		if reloaded.Answers[key] != selected {
			t.Errorf("reloaded.Answers[%q] = %d, want %d", key, reloaded.Answers[key], selected)
		}
	}
}

// A recorded score is a snapshot: editing a question afterwards must not
// change it.
func TestScoreImmutableAfterQuestionEdit(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)
	quiz, questions := createQuiz(t, env, 1, 1)

	answers := model.AnswerMap{
		questionKey(&questions[0]): 1,
		questionKey(&questions[1]): 1,
	}
	score, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}
	if score.TotalScore != 100 {
		t.Fatalf("TotalScore = %v, want 100", score.TotalScore)
	}

	_, err = env.quiz.UpdateQuestion(questions[0].ID, service.QuestionRequest{
		QuestionStatement: questions[0].QuestionStatement,
		Option1:           questions[0].Option1,
		Option2:           questions[0].Option2,
		Option3:           questions[0].Option3,
		Option4:           questions[0].Option4,
		CorrectOption:     3,
	})
	if err != nil {
		t.Fatalf("UpdateQuestion() error = %v", err)
	}

	reloaded, err := env.scores.FindByID(score.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if reloaded.TotalScore != 100 {
		t.Errorf("TotalScore after question edit = %v, want 100", reloaded.TotalScore)
	}
}

func TestAssembleResultBreakdown(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)
	quiz, questions := createQuiz(t, env, 1, 2)

	// First answer correct, second wrong, spec'd at 50%.
	answers := model.AnswerMap{
		questionKey(&questions[0]): 1,
		questionKey(&questions[1]): 3,
	}
	score, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}
	if score.TotalScore != 50 {
		t.Fatalf("TotalScore = %v, want 50", score.TotalScore)
	}

	view, err := env.scoring.AssembleResult(quiz.ID, score.ID, claimsFor(user))
	if err != nil {
		t.Fatalf("AssembleResult() error = %v", err)
	}
	if len(view.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(view.Results))
	}

	first := view.Results[0]
	if !first.IsCorrect {
		t.Errorf("Results[0].IsCorrect = false, want true")
	}
	if first.SelectedAnswer != questions[0].Option1 {
		t.Errorf("Results[0].SelectedAnswer = %q, want %q", first.SelectedAnswer, questions[0].Option1)
	}

	second := view.Results[1]
	if second.IsCorrect {
		t.Errorf("Results[1].IsCorrect = true, want false")
	}
	if second.SelectedAnswer != questions[1].Option3 {
		t.Errorf("Results[1].SelectedAnswer = %q, want %q", second.SelectedAnswer, questions[1].Option3)
	}
	if second.CorrectAnswer != questions[1].Option2 {
		t.Errorf("Results[1].CorrectAnswer = %q, want %q", second.CorrectAnswer, questions[1].Option2)
	}
}

func TestAssembleResultNotAnswered(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)
	quiz, questions := createQuiz(t, env, 1, 2)

	answers := model.AnswerMap{questionKey(&questions[0]): 1}
	score, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}

	view, err := env.scoring.AssembleResult(quiz.ID, score.ID, claimsFor(user))
	if err != nil {
		t.Fatalf("AssembleResult() error = %v", err)
	}
	skipped := view.Results[1]
	if skipped.SelectedAnswer != service.NotAnswered {
		t.Errorf("SelectedAnswer = %q, want %q", skipped.SelectedAnswer, service.NotAnswered)
	}
	if skipped.IsCorrect {
		t.Errorf("IsCorrect for a skipped question = true, want false")
	}
}

func TestAssembleResultAuthorization(t *testing.T) {
	env := newTestEnv(t)
	owner := createUser(t, env, "owner@example.com", model.RoleUser)
	other := createUser(t, env, "other@example.com", model.RoleUser)
	admin := createUser(t, env, "admin@example.com", model.RoleAdmin)
	quiz, questions := createQuiz(t, env, 1)

	answers := model.AnswerMap{questionKey(&questions[0]): 1}
	score, err := env.scoring.ScoreSubmission(owner.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}

	if _, err := env.scoring.AssembleResult(quiz.ID, score.ID, claimsFor(owner)); err != nil {
		t.Errorf("owner AssembleResult() error = %v, want nil", err)
	}
	if _, err := env.scoring.AssembleResult(quiz.ID, score.ID, claimsFor(admin)); err != nil {
		t.Errorf("admin AssembleResult() error = %v, want nil", err)
	}
	if _, err := env.scoring.AssembleResult(quiz.ID, score.ID, claimsFor(other)); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("other user AssembleResult() error = %v, want ErrPermissionDenied", err)
	}
}

func TestAssembleResultQuizMismatch(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)
	quiz, questions := createQuiz(t, env, 1)

	answers := model.AnswerMap{questionKey(&questions[0]): 1}
	score, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}

	if _, err := env.scoring.AssembleResult(quiz.ID+1, score.ID, claimsFor(user)); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("AssembleResult() with mismatched quiz error = %v, want ErrNotFound", err)
	}
}

func TestListUserScoresNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env, "taker@example.com", model.RoleUser)
	quiz, questions := createQuiz(t, env, 1)

	answers := model.AnswerMap{questionKey(&questions[0]): 1}
	if _, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, answers); err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}
	second, err := env.scoring.ScoreSubmission(user.ID, quiz.ID, model.AnswerMap{})
	if err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}

	scores, err := env.scoring.ListUserScores(user.ID)
	if err != nil {
		t.Fatalf("ListUserScores() error = %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d, want 2", len(scores))
	}
	if scores[0].ID != second.ID {
		t.Errorf("scores[0].ID = %d, want most recent %d", scores[0].ID, second.ID)
	}
}
