package handlers

import (
	"shopfront/config"
	"shopfront/payments"
	"shopfront/services"
	"shopfront/store"
)

type Handler struct {
	Users    store.UserStore
	Contacts store.ContactStore
	Signup   *services.SignupService
	Config   config.Config
}

func New(users store.UserStore, contacts store.ContactStore, gateway payments.Gateway, cfg config.Config) *Handler {
	return &Handler{
		Users:    users,
		Contacts: contacts,
		Signup:   &services.SignupService{Users: users, Payments: gateway},
		Config:   cfg,
	}
}
