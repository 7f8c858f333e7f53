package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kriju0726/HealiFy/internal/domain"
)

type profileRequest struct {
	Age      int  `json:"age"`
	Weight   int  `json:"weight"`
	Height   int  `json:"height"`
	Smoking  bool `json:"smoking"`
	Drinking bool `json:"drinking"`
}

type predictRequest struct {
	Answers map[string]int `json:"answers"`
}

func profileResponse(profile domain.Profile) gin.H {
	return gin.H{
		"age":      profile.Age,
		"weight":   profile.Weight,
		"height":   profile.Height,
		"smoking":  profile.Smoking,
		"drinking": profile.Drinking,
	}
}

func (s *Server) handleGetProfile(c *gin.Context) {
	record, ok := s.store.get(currentEmail(c))
	if !ok {
		respond(c, http.StatusUnauthorized, false, "account no longer exists", nil)
		return
	}

	respond(c, http.StatusOK, true, "", profileResponse(record.Profile))
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "malformed profile payload", nil)
		return
	}
	if req.Age < 0 || req.Weight < 0 || req.Height < 0 {
		respond(c, http.StatusBadRequest, false, "age, weight and height must not be negative", nil)
		return
	}

	profile := domain.Profile{
		Age:      req.Age,
		Weight:   req.Weight,
		Height:   req.Height,
		Smoking:  req.Smoking,
		Drinking: req.Drinking,
	}
	if !s.store.setProfile(currentEmail(c), profile) {
		respond(c, http.StatusUnauthorized, false, "account no longer exists", nil)
		return
	}

	respond(c, http.StatusOK, true, "profile updated", profileResponse(profile))
}

func (s *Server) handlePredict(c *gin.Context) {
	typ := domain.AssessmentType(c.Param("type"))
	if !typ.Valid() {
		respond(c, http.StatusNotFound, false, "unknown assessment type", nil)
		return
	}

	record, ok := s.store.get(currentEmail(c))
	if !ok {
		respond(c, http.StatusUnauthorized, false, "account no longer exists", nil)
		return
	}

	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Answers) == 0 {
		respond(c, http.StatusBadRequest, false, "answers are required", nil)
		return
	}

	percentage, factors := scoreAnswers(typ, req.Answers, record.Profile)
	now := s.clock.Now()

	s.store.appendHistory(record.Email, domain.HistoryEntry{
		Disease:    typ,
		Date:       now,
		Percentage: percentage,
	})

	factorPayload := make([]gin.H, 0, len(factors))
	for _, factor := range factors {
		factorPayload = append(factorPayload, gin.H{"name": factor.Name, "impact": factor.Impact})
	}

	respond(c, http.StatusOK, true, "", gin.H{
		"percentage":  percentage,
		"riskFactors": factorPayload,
		"timestamp":   now.Unix(),
	})
}

func (s *Server) handleHistory(c *gin.Context) {
	entries := s.store.history(currentEmail(c))

	payload := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, gin.H{
			"disease":    string(entry.Disease),
			"date":       entry.Date.Unix(),
			"percentage": entry.Percentage,
		})
	}

	respond(c, http.StatusOK, true, "", payload)
}

// scoreAnswers is a deterministic stand-in for the real model: the
// percentage is the mean reported intensity of the catalog questions
// with small habit and age adjustments, and each nonzero answer
// contributes a factor proportional to its intensity.
func scoreAnswers(typ domain.AssessmentType, answers map[string]int, profile domain.Profile) (int, []domain.RiskFactor) {
	questions := domain.Questions(typ)

	total := 0
	factors := make([]domain.RiskFactor, 0, len(questions))
	for _, question := range questions {
		value := answers[question.Key]
		if value < domain.AnswerMin {
			value = domain.AnswerMin
		}
		if value > domain.AnswerMax {
			value = domain.AnswerMax
		}

		total += value
		if value > 0 {
			factors = append(factors, domain.RiskFactor{Name: question.Key, Impact: (value + 1) / 2})
		}
	}

	percentage := 0
	if len(questions) > 0 {
		percentage = total / len(questions)
	}
	if profile.Smoking {
		percentage += 6
	}
	if profile.Drinking {
		percentage += 4
	}
	if profile.Age > 50 {
		percentage += 5
	}
	if percentage > 100 {
		percentage = 100
	}

	domain.SortRiskFactors(factors)

	return percentage, factors
}
