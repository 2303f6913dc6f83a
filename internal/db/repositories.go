package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Teams    *TeamRepository
	Events   *EventRepository
	Tasks    *TaskRepository
	Clients  *ClientRepository
	Quotes   *QuoteRepository
	Invoices *InvoiceRepository
	Todos    *TodoRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Teams:    NewTeamRepository(database),
		Events:   NewEventRepository(database),
		Tasks:    NewTaskRepository(database),
		Clients:  NewClientRepository(database),
		Quotes:   NewQuoteRepository(database),
		Invoices: NewInvoiceRepository(database),
		Todos:    NewTodoRepository(database),
	}
}
