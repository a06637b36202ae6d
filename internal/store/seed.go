package store

import (
	"time"

	"school-link-go/internal/domain/directory"
	"school-link-go/internal/domain/feed"
	"school-link-go/internal/domain/inscription"
)

// Built-in dataset used when a collection has never been saved or its stored
// blob cannot be parsed.

func SeedUsers() []directory.User {
	return []directory.User{
		{
			ID: "user-1", Name: "Alice Dubois (Admin)",
			AvatarURL:          "https://picsum.photos/seed/user1/100/100",
			Role:               directory.RoleGlobalAdmin,
			IsPremium:          true,
			EmailNotifications: true,
			NotificationStartTime: "08:00", NotificationEndTime: "20:00",
			Children: []directory.Child{{ID: "child-1", Name: "Léo", ClassGroupID: "group-ce1"}},
			Groups:   []string{"group-bureau", "group-animation", "group-travaux", "group-ce1", "group-jardinage"},
		},
		{
			ID: "user-2", Name: "Bob Martin",
			AvatarURL:          "https://picsum.photos/seed/user2/100/100",
			Role:               directory.RoleParent,
			IsPremium:          true,
			EmailNotifications: true,
			NotificationStartTime: "09:00", NotificationEndTime: "18:00",
			Children: []directory.Child{{ID: "child-2", Name: "Chloé", ClassGroupID: "group-cm2"}},
			Groups:   []string{"group-cm2"},
		},
		{
			ID: "user-3", Name: "Claire Petit",
			AvatarURL:             "https://picsum.photos/seed/user3/100/100",
			Role:                  directory.RoleParent,
			NotificationStartTime: "18:00", NotificationEndTime: "21:00",
			Children: []directory.Child{
				{ID: "child-3", Name: "Hugo", ClassGroupID: "group-ce1"},
				{ID: "child-4", Name: "Manon", ClassGroupID: "group-cm2"},
			},
			Groups: []string{"group-ce1", "group-cm2"},
		},
		{
			ID: "user-4", Name: "David Roy (Admin Anim.)",
			AvatarURL:          "https://picsum.photos/seed/user4/100/100",
			Role:               directory.RoleGroupAdmin,
			EmailNotifications: true,
			NotificationStartTime: "08:00", NotificationEndTime: "22:00",
			Children: []directory.Child{},
			Groups:   []string{"group-animation"},
		},
		{
			ID: "user-5", Name: "Sophie Bernard",
			AvatarURL:          "https://picsum.photos/seed/user5/100/100",
			Role:               directory.RoleParent,
			EmailNotifications: true,
			NotificationStartTime: "08:00", NotificationEndTime: "22:00",
			Children: []directory.Child{{ID: "child-5", Name: "Lucas", ClassGroupID: "group-ce1"}},
			Groups:   []string{"group-ce1", "group-jardinage"},
		},
		{
			ID: "user-6", Name: "Marc Moreau",
			AvatarURL:             "https://picsum.photos/seed/user6/100/100",
			Role:                  directory.RoleParent,
			NotificationStartTime: "08:00", NotificationEndTime: "22:00",
			Children: []directory.Child{{ID: "child-6", Name: "Emma", ClassGroupID: "group-cm2"}},
			Groups:   []string{"group-cm2", "group-travaux"},
		},
	}
}

func SeedGroups() []directory.Group {
	return []directory.Group{
		{ID: "group-bureau", Name: "Bureau OGEC", Description: "Gestion administrative et financière", AdminIDs: []string{"user-1"}},
		{ID: "group-animation", Name: "Commission Animation", Description: "Organisation des fêtes et événements", AdminIDs: []string{"user-1", "user-4"}},
		{ID: "group-travaux", Name: "Commission Travaux", Description: "Entretien et rénovation de l'école", AdminIDs: []string{"user-1"}},
		{ID: "group-ce1", Name: "Classe CE1", Description: "Parents d'élèves de la classe de CE1", AdminIDs: []string{"user-1"}},
		{ID: "group-cm2", Name: "Classe CM2", Description: "Parents d'élèves de la classe de CM2", AdminIDs: []string{"user-1"}},
		{ID: "group-jardinage", Name: "Club Jardinage", Description: "Entretien du potager de l'école", AdminIDs: []string{"user-1"}},
	}
}

func SeedTables() []inscription.Table {
	return []inscription.Table{
		{
			ID:    "table-kermesse",
			Title: "Planning des Stands - Kermesse",
			Activities: []inscription.Activity{
				{ID: "act-peche", Name: "Pêche à la ligne"},
				{ID: "act-bar", Name: "Buvette"},
				{ID: "act-ticket", Name: "Vente Tickets"},
			},
			TimeSlots: []inscription.TimeSlot{
				{ID: "slot-10-12", Label: "10h00 - 12h00"},
				{ID: "slot-12-14", Label: "12h00 - 14h00"},
				{ID: "slot-14-16", Label: "14h00 - 16h00"},
			},
			Slots: []inscription.Slot{
				{ActivityID: "act-peche", TimeSlotID: "slot-10-12", Capacity: 2, RegisteredUserIDs: []string{"user-2"}},
				{ActivityID: "act-peche", TimeSlotID: "slot-12-14", Capacity: 2, RegisteredUserIDs: []string{}},
				{ActivityID: "act-peche", TimeSlotID: "slot-14-16", Capacity: 2, RegisteredUserIDs: []string{}},
				{ActivityID: "act-bar", TimeSlotID: "slot-10-12", Capacity: 3, RegisteredUserIDs: []string{"user-3"}},
				{ActivityID: "act-bar", TimeSlotID: "slot-12-14", Capacity: 3, RegisteredUserIDs: []string{"user-1"}},
				{ActivityID: "act-bar", TimeSlotID: "slot-14-16", Capacity: 3, RegisteredUserIDs: []string{}},
				{ActivityID: "act-ticket", TimeSlotID: "slot-10-12", Capacity: 1, RegisteredUserIDs: []string{}},
				{ActivityID: "act-ticket", TimeSlotID: "slot-12-14", Capacity: 1, RegisteredUserIDs: []string{}},
				{ActivityID: "act-ticket", TimeSlotID: "slot-14-16", Capacity: 1, RegisteredUserIDs: []string{}},
			},
		},
	}
}

func SeedMessages(now time.Time) []feed.Message {
	scheduled := now.Add(48 * time.Hour)
	return []feed.Message{
		{
			ID: "msg-1", GroupID: "group-bureau", AuthorID: "user-1",
			Type:      feed.TypeAnnouncement,
			Title:     "Réunion de rentrée",
			Content:   "Bonjour à tous,\n\nLa réunion de rentrée du bureau OGEC aura lieu le mardi 15 septembre à 20h dans la salle des maîtres.\n\nOrdre du jour :\n- Bilan financier\n- Projets de l'année\n- Questions diverses\n\nMerci de votre présence.",
			Timestamp: time.Date(2023, 9, 1, 9, 0, 0, 0, time.UTC),
			Replies: []feed.Reply{
				{ID: "r1", AuthorID: "user-2", Content: "Je serai présent.", Timestamp: time.Date(2023, 9, 1, 10, 0, 0, 0, time.UTC)},
				{ID: "r2", AuthorID: "user-3", Content: "Je ne pourrai malheureusement pas être là.", Timestamp: time.Date(2023, 9, 1, 11, 30, 0, 0, time.UTC)},
			},
		},
		{
			ID: "msg-2", GroupID: "group-animation", AuthorID: "user-4",
			Type:               feed.TypeInscriptionForm,
			Title:              "Appel aux bénévoles - Kermesse",
			Content:            "Chers parents,\n\nLa kermesse approche ! Nous avons besoin de vous pour tenir les stands. Merci de vous inscrire sur le tableau ci-dessous selon vos disponibilités.\n\nCordialement,\nLa commission animation",
			Timestamp:          time.Date(2023, 6, 1, 14, 0, 0, 0, time.UTC),
			InscriptionTableID: "table-kermesse",
			Replies:            []feed.Reply{},
		},
		{
			ID: "msg-3", GroupID: "group-cm2", AuthorID: "user-1",
			Type:      feed.TypeSimplePoll,
			Title:     "Sortie Scolaire - Musée des Beaux-Arts",
			Content:   "Nous organisons une sortie au musée le 20 octobre. Nous avons besoin de 3 accompagnateurs.\n\nPouvez-vous nous indiquer votre disponibilité via le sondage ci-dessous ?",
			Timestamp: time.Date(2023, 10, 5, 8, 30, 0, 0, time.UTC),
			Attendees: []string{"user-2"},
			Absentees: []string{"user-3"},
			Replies:   []feed.Reply{},
		},
		{
			ID: "msg-4", GroupID: "group-ce1", AuthorID: "user-1",
			Type:      feed.TypeAnnouncement,
			Title:     "Rappel : Cahiers de liaison",
			Content:   "Bonjour,\n\nMerci de bien vouloir vérifier les cahiers de liaison ce soir, un mot important concernant la photo de classe y a été collé.\n\nLa maîtresse.",
			Timestamp: time.Date(2023, 9, 10, 16, 0, 0, 0, time.UTC),
			Replies:   []feed.Reply{},
		},
		{
			ID: "msg-5", GroupID: "group-bureau", AuthorID: "user-1",
			Type:        feed.TypeAnnouncement,
			Title:       "Projet Travaux Été (Programmé)",
			Content:     "Voici le récapitulatif des travaux prévus cet été.",
			Timestamp:   time.Date(2023, 6, 20, 10, 0, 0, 0, time.UTC),
			ScheduledAt: &scheduled,
			Replies:     []feed.Reply{},
		},
		{
			ID: "msg-6", GroupID: "group-jardinage", AuthorID: "user-1",
			Type:      feed.TypeAnnouncement,
			Title:     "Plantation de printemps",
			Content:   "Rendez-vous samedi matin pour les plantations ! N'oubliez pas vos bottes.",
			Timestamp: now,
			Replies:   []feed.Reply{},
		},
		{
			ID: "msg-7", GroupID: "group-travaux", AuthorID: "user-6",
			Type:      feed.TypeSimplePoll,
			Title:     "Montage des nouveaux bancs",
			Content:   "Nous avons reçu les nouveaux bancs pour la cour. Qui est disponible samedi matin pour aider au montage ?",
			Timestamp: now,
			Attendees: []string{},
			Absentees: []string{},
			Replies:   []feed.Reply{},
		},
		{
			ID: "msg-8", GroupID: "group-cm2", AuthorID: "user-1",
			Type:      feed.TypeAnnouncement,
			Title:     "Exposition Arts Plastiques",
			Content:   "Bravo aux élèves pour leurs créations !",
			ImageURL:  "https://picsum.photos/seed/art/800/400",
			Timestamp: now,
			Replies:   []feed.Reply{},
		},
	}
}
