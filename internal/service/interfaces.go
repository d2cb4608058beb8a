package service

import "github.com/alexanderramin/bossboard/internal/app"

// RosterService is the persistence gateway between a session and the
// roster store.
type RosterService interface {
	app.LoadRosterUseCase
	app.ReloadRosterUseCase
	app.SaveRosterUseCase
	app.SeedRosterUseCase
	app.EditRosterUseCase
}
