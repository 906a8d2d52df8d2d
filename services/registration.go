package services

import (
	"golang.org/x/crypto/bcrypt"

	"shopfront/forms"
	"shopfront/models"
	"shopfront/payments"
	"shopfront/store"
)

// SignupService runs the registration steps in a fixed order:
// payment customer first, local user second. Creating the customer
// before the user means a declined card never leaves a user row
// behind; the price is that a duplicate-email failure at the persist
// step orphans the customer just created at the processor. There is
// no rollback or retry for that case.
type SignupService struct {
	Users    store.UserStore
	Payments payments.Gateway
}

// Register takes an already-validated form and returns the persisted
// user. Errors come back untranslated: *payments.ProcessorError when
// the processor refuses the card, store.ErrDuplicateEmail when the
// email lost the uniqueness race.
func (s *SignupService) Register(form forms.RegisterForm) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cust, err := s.Payments.CreateSubscription(form.Name, form.Email, form.StripeToken, payments.PlanGold)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.Create(form.Name, form.Email, string(hash), form.Last4Digits, cust.ID)
	if err != nil {
		// TODO: delete the orphaned processor customer here once the
		// gateway grows a delete-customer call.
		return nil, err
	}

	return user, nil
}
