// Package seed provides the bootstrap project fixture for the board.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
)

// Load reads a project collection from a JSON file, or returns the built-in
// fixture when path is empty.
func Load(path string) ([]*entities.Project, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var raw []seedProject
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	projects := make([]*entities.Project, 0, len(raw))
	for _, sp := range raw {
		projects = append(projects, sp.toEntity())
	}
	return projects, nil
}

type seedRequest struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Message  string `json:"message"`
	Status   string `json:"status"`
}

type seedProject struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Summary      string        `json:"summary"`
	Description  string        `json:"description"`
	SkillsNeeded []string      `json:"skills_needed"`
	TeamMembers  []string      `json:"team_members"`
	Author       string        `json:"author"`
	JoinRequests []seedRequest `json:"join_requests"`
}

func (sp seedProject) toEntity() *entities.Project {
	requests := make([]entities.JoinRequest, 0, len(sp.JoinRequests))
	for _, r := range sp.JoinRequests {
		status := entities.RequestStatus(r.Status)
		if status == "" {
			status = entities.StatusPending
		}
		requests = append(requests, entities.JoinRequest{
			ID:       r.ID,
			UserName: r.UserName,
			Message:  r.Message,
			Status:   status,
		})
	}
	return &entities.Project{
		ID:           sp.ID,
		Title:        sp.Title,
		Summary:      sp.Summary,
		Description:  sp.Description,
		SkillsNeeded: sp.SkillsNeeded,
		TeamMembers:  sp.TeamMembers,
		Author:       sp.Author,
		JoinRequests: requests,
	}
}

// Default returns the example project collection the board starts with when
// no seed file is configured.
func Default() []*entities.Project {
	return []*entities.Project{
		{
			ID:           "proj-1",
			Title:        "Campus Sustainability Tracker",
			Summary:      "An app to monitor and promote eco-friendly practices across campus, from recycling to energy consumption.",
			Description:  "We want to build a comprehensive dashboard that visualizes real-time data on campus sustainability efforts. The app will feature gamification elements to encourage student participation, such as leaderboards and rewards for green activities. We will integrate with campus APIs for data on energy usage, water consumption, and waste management.",
			SkillsNeeded: []string{"React Native", "Firebase", "UI/UX Design", "Data Visualization"},
			TeamMembers:  []string{"Alice", "Bob"},
			Author:       "Alice",
			JoinRequests: []entities.JoinRequest{},
		},
		{
			ID:           "proj-2",
			Title:        "AI-Powered Study Buddy",
			Summary:      "A personalized chatbot that helps students create study schedules, summarizes lecture notes, and quizzes them on key topics.",
			Description:  "This project aims to leverage large language models to create an intelligent study assistant. It will be able to ingest various document types (PDFs, DOCX), generate concise summaries, create flashcards, and hold conversational-style quizzes. The goal is to make studying more efficient and interactive.",
			SkillsNeeded: []string{"Python", "LangChain", "React", "NLP"},
			TeamMembers:  []string{"Charlie"},
			Author:       "Charlie",
			JoinRequests: []entities.JoinRequest{
				{
					ID:       "req-1",
					UserName: "Dave",
					Message:  "I have experience with Python and NLP and would love to contribute to this AI project.",
					Status:   entities.StatusPending,
				},
			},
		},
		{
			ID:           "proj-3",
			Title:        "AR Campus Tour Guide",
			Summary:      "An augmented reality mobile app that provides an interactive and historical tour of the university campus.",
			Description:  "New students and visitors can use their smartphone to see historical photos overlaid on current buildings, get information about landmarks, and navigate campus with AR wayfinding. The app will be built using ARKit/ARCore and will feature 3D models and rich multimedia content.",
			SkillsNeeded: []string{"Unity", "C#", "ARKit", "3D Modeling"},
			TeamMembers:  []string{"Diana", "Eve", "Frank"},
			Author:       "Diana",
			JoinRequests: []entities.JoinRequest{},
		},
		{
			ID:           "proj-4",
			Title:        "Student Event Finder",
			Summary:      "A centralized platform for discovering and sharing events happening on and around campus, from club meetings to concerts.",
			Description:  "This web app will feature a filterable calendar, event submission forms for student organizations, and an integrated map view. The goal is to combat \"event fragmentation\" where events are scattered across social media, flyers, and different department websites.",
			SkillsNeeded: []string{"Vue.js", "Node.js", "MongoDB", "Leaflet.js"},
			TeamMembers:  []string{"George", "Heidi"},
			Author:       "George",
			JoinRequests: []entities.JoinRequest{},
		},
		{
			ID:           "proj-5",
			Title:        "Peer Tutor Marketplace",
			Summary:      "A platform connecting students who need academic help with qualified peer tutors for various subjects.",
			Description:  "Tutors can create profiles listing their expertise and availability. Students can search for tutors, book sessions, and handle payments securely through the platform. It will include a rating and review system to ensure quality.",
			SkillsNeeded: []string{"Django", "PostgreSQL", "Stripe API", "React"},
			TeamMembers:  []string{"Ivan", "Judy"},
			Author:       "Ivan",
			JoinRequests: []entities.JoinRequest{},
		},
		{
			ID:           "proj-6",
			Title:        "Dorm Room Recipe Share",
			Summary:      "A mobile-first web app for students to share and discover simple, budget-friendly recipes that can be made in a dorm kitchen.",
			Description:  "Users can post recipes with photos, tag them with dietary restrictions (e.g., vegan, gluten-free), and create shopping lists. A key feature will be a \"pantry search\" where users can input ingredients they have on hand to find matching recipes.",
			SkillsNeeded: []string{"Next.js", "GraphQL", "Tailwind CSS", "Cloudinary"},
			TeamMembers:  []string{"Jane Doe"},
			Author:       "Jane Doe",
			JoinRequests: []entities.JoinRequest{
				{
					ID:       "req-2",
					UserName: "Oscar",
					Message:  "Big fan of cooking and I have some ideas for the pantry search feature!",
					Status:   entities.StatusPending,
				},
				{
					ID:       "req-3",
					UserName: "Peggy",
					Message:  "I can help with the frontend using Next.js and Tailwind CSS.",
					Status:   entities.StatusPending,
				},
			},
		},
	}
}
