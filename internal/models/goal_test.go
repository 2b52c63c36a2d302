package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Setting a goal twice leaves exactly one goal row for the user.
func (suite *TestSuiteStandard) TestSetSavingsGoalUpsert() {
	user := suite.createTestUser(models.User{})

	first, err := models.SetSavingsGoal(user.ID, decimal.NewFromInt(10000))
	assert.Nil(suite.T(), err)

	_, err = models.SetSavingsGoal(user.ID, decimal.NewFromInt(20000))
	assert.Nil(suite.T(), err)

	var count int64
	err = models.DB.Model(&models.SavingsGoal{}).Where("user_id = ?", user.ID).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	goal, err := models.SavingsGoalForUser(user.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), first.ID, goal.ID)
	assert.True(suite.T(), decimal.NewFromInt(20000).Equal(goal.Amount), "amount is %s", goal.Amount)
}

// A user without a configured goal gets nil, not an error.
func (suite *TestSuiteStandard) TestSavingsGoalForUserNone() {
	user := suite.createTestUser(models.User{})

	goal, err := models.SavingsGoalForUser(user.ID)
	assert.Nil(suite.T(), err)
	assert.Nil(suite.T(), goal)
}
