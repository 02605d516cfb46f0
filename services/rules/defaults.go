package rules

import "equipecal/models"

// Default returns the built-in rule set: the team's roster rotation, the 2025
// Brazilian holiday table with partnership tags, and the Tuesday/Friday team
// sync cadence. Each call returns a fresh copy.
func Default() *Set {
	return &Set{
		MonthNames: []string{
			"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
			"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
		},
		Roster: []RosterSlot{
			{Principal: memberJR(models.RolePrincipal), Advertising: memberAna(models.RoleAdvertising)},
			{Principal: memberFelipe(models.RolePrincipal), Advertising: memberFelipe(models.RoleAdvertising)},
			{Principal: memberJoao(models.RolePrincipal), Advertising: memberJoao(models.RoleAdvertising)},
			{Principal: memberVinicius(models.RolePrincipal), Advertising: memberVinicius(models.RoleAdvertising)},
			{Principal: memberRenato(models.RolePrincipal), Advertising: memberRenato(models.RoleAdvertising)},
			{Principal: memberGuilherme(models.RolePrincipal), Advertising: memberVinicius(models.RoleAdvertising)},
			{Principal: memberJoao(models.RolePrincipal), Advertising: memberRenato(models.RoleAdvertising)},
			{Principal: memberVinicius(models.RolePrincipal), Advertising: memberFelipe(models.RoleAdvertising)},
			{Principal: memberRenato(models.RolePrincipal), Advertising: memberVinicius(models.RoleAdvertising)},
			{Principal: memberGuilherme(models.RolePrincipal), Advertising: memberRenato(models.RoleAdvertising)},
			{Principal: memberJoao(models.RolePrincipal), Advertising: memberGuilherme(models.RoleAdvertising)},
			{Principal: memberVinicius(models.RolePrincipal), Advertising: memberJoao(models.RoleAdvertising)},
		},
		Holidays: map[int][]Holiday{
			2025: {
				{
					Name:        "Confraternização Universal",
					Date:        "01-01",
					Brands:      []string{"Coca-Cola", "Magazine Luiza", "Mercado Livre"},
					Influencers: []string{"Kerbitos", "Filipe Leme", "Boteco F1"},
				},
				{
					Name:        "Carnaval",
					Date:        "03-03",
					Brands:      []string{"Skol", "Brahma", "Ambev"},
					Influencers: []string{"Carlinhos Maia", "Whindersson Nunes"},
				},
				{
					Name:        "Carnaval",
					Date:        "03-04",
					Brands:      []string{"Skol", "Brahma", "Ambev"},
					Influencers: []string{"Carlinhos Maia", "Whindersson Nunes"},
				},
				{
					Name:        "Sexta-feira Santa",
					Date:        "04-18",
					Brands:      []string{"Nestlé", "Garoto"},
					Influencers: []string{"Padre Fábio de Melo"},
				},
				{
					Name:        "Tiradentes",
					Date:        "04-21",
					Brands:      []string{"Petrobras", "Vale"},
					Influencers: []string{"Felipe Neto"},
				},
				{
					Name:        "Dia do Trabalhador",
					Date:        "05-01",
					Brands:      []string{"Magazine Luiza", "Casas Bahia"},
					Influencers: []string{"Luciano Hang"},
				},
				{
					Name:        "Corpus Christi",
					Date:        "06-19",
					Brands:      []string{"Nestlé", "Garoto"},
					Influencers: []string{"Padre Fábio de Melo"},
				},
				{
					Name:        "Independência do Brasil",
					Date:        "09-07",
					Brands:      []string{"Petrobras", "Vale", "JBS"},
					Influencers: []string{"Felipe Neto", "Kerbitos"},
				},
				{
					Name:        "Nossa Senhora Aparecida",
					Date:        "10-12",
					Brands:      []string{"Nestlé", "Garoto"},
					Influencers: []string{"Padre Fábio de Melo"},
				},
				{
					Name:        "Finados",
					Date:        "11-02",
					Brands:      []string{"Nestlé", "Garoto"},
					Influencers: []string{"Padre Fábio de Melo"},
				},
				{
					Name:        "Proclamação da República",
					Date:        "11-15",
					Brands:      []string{"Petrobras", "Vale"},
					Influencers: []string{"Felipe Neto"},
				},
				{
					Name:        "Natal",
					Date:        "12-25",
					Brands:      []string{"Coca-Cola", "Magazine Luiza", "Mercado Livre", "O Boticário"},
					Influencers: []string{"Kerbitos", "Filipe Leme", "Boteco F1", "Whindersson Nunes"},
				},
			},
		},
		Meetings: MeetingRule{
			Weekdays: []int{2, 5}, // Tuesday and Friday
			Time:     "19:00",
			Label:    "Reunião de Equipe",
			Color:    "green",
		},
	}
}

func memberJR(role string) models.TeamMember {
	return models.TeamMember{Name: "JR", Role: role, AvatarRef: "/professional-man.png", Initials: "JR"}
}

func memberAna(role string) models.TeamMember {
	return models.TeamMember{Name: "Ana Silva", Role: role, AvatarRef: "/professional-woman-diverse.png", Initials: "AS"}
}

func memberFelipe(role string) models.TeamMember {
	return models.TeamMember{Name: "Felipe D.", Role: role, AvatarRef: "/feliped-Redondo.png", Initials: "FD"}
}

func memberJoao(role string) models.TeamMember {
	return models.TeamMember{Name: "João Gabriel", Role: role, AvatarRef: "/Gabs-redondo.png", Initials: "JG"}
}

func memberVinicius(role string) models.TeamMember {
	return models.TeamMember{Name: "Vinícius F.", Role: role, AvatarRef: "/vini-redondo.jpg", Initials: "VF"}
}

func memberRenato(role string) models.TeamMember {
	return models.TeamMember{Name: "José Renato", Role: role, AvatarRef: "/Renato-redondo.png", Initials: "JR"}
}

func memberGuilherme(role string) models.TeamMember {
	return models.TeamMember{Name: "Guilherme V.", Role: role, AvatarRef: "/Gui-redondo.png", Initials: "GV"}
}
