package tournament

type CreateTournamentInput struct {
	Name string
}

type ListPlayersInput struct {
	TournamentID string
}

type AddPlayerInput struct {
	TournamentID string
	Name         string
}
