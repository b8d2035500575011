package memory

import (
	"context"
	"time"

	"Scoops/internal/core/comments"
	"Scoops/internal/core/posts"
)

// fixturePost describes one seeded post relative to the seed instant.
type fixturePost struct {
	id        string
	content   string
	ageMin    int
	upvotes   int
	downvotes int
	hashtags  []string
}

// Fixture data the store is reseeded from on every initialization.
// Listed newest-first, the order the feed shows them in before any voting.
var fixturePosts = []fixturePost{
	{
		id:        "post_1",
		content:   "Anyone else excited about the Microsoft Build conference next week? Really hoping to see some cool Azure updates! 🚀",
		ageMin:    5,
		upvotes:   24,
		downvotes: 3,
		hashtags:  []string{"#Build2025", "#Azure", "#Microsoft"},
	},
	{
		id:        "post_2",
		content:   "Hot take: Teams is actually getting really good. The new meeting features are a game changer for remote work.",
		ageMin:    12,
		upvotes:   67,
		downvotes: 21,
		hashtags:  []string{"#Teams", "#RemoteWork", "#ProductivityTools"},
	},
	{
		id:        "post_3",
		content:   "Just shipped my first app using .NET MAUI and I'm honestly impressed. Cross-platform development has never been smoother.",
		ageMin:    18,
		upvotes:   45,
		downvotes: 4,
		hashtags:  []string{"#MAUI", "#DotNet", "#CrossPlatform", "#AppDev"},
	},
	{
		id:        "post_4",
		content:   "Does anyone know if there's a student discount for Microsoft 365? Starting college next month and need all the help I can get 📚",
		ageMin:    25,
		upvotes:   31,
		downvotes: 2,
		hashtags:  []string{"#StudentLife", "#Office365", "#Education"},
	},
	{
		id:        "post_5",
		content:   "The new Copilot features in VS Code are absolutely mind-blowing. It's like having a senior developer pair programming with you 24/7.",
		ageMin:    32,
		upvotes:   89,
		downvotes: 7,
		hashtags:  []string{"#Copilot", "#VSCode", "#AI", "#PairProgramming"},
	},
	{
		id:        "post_6",
		content:   "Azure DevOps vs GitHub - which one do you prefer for enterprise projects? Looking for some honest opinions here.",
		ageMin:    45,
		upvotes:   78,
		downvotes: 12,
		hashtags:  []string{"#AzureDevOps", "#GitHub", "#Enterprise", "#DevOps"},
	},
	{
		id:        "post_7",
		content:   "Microsoft Copilot in VS Code has literally changed my life. I feel like I have a coding buddy who never gets tired of helping. 🤖",
		ageMin:    60,
		upvotes:   234,
		downvotes: 18,
		hashtags:  []string{"#Copilot", "#VSCode", "#GameChanger"},
	},
	{
		id:        "post_8",
		content:   "Working on a Power Platform solution and I can't believe how much you can accomplish without writing a single line of code. Microsoft really nailed this one.",
		ageMin:    65,
		upvotes:   156,
		downvotes: 9,
		hashtags:  []string{"#PowerPlatform", "#NoCode", "#LowCode"},
	},
}

type fixtureComment struct {
	id        string
	postID    string
	content   string
	ageMin    int
	upvotes   int
	downvotes int
	hashtags  []string
}

var fixtureComments = []fixtureComment{
	{
		id:      "comment_1",
		postID:  "post_1",
		content: "The keynote is usually worth it just for the demos",
		ageMin:  2,
		upvotes: 5,
	},
	{
		id:        "comment_2",
		postID:    "post_1",
		content:   "Hoping for more AKS announcements this year",
		ageMin:    3,
		upvotes:   3,
		downvotes: 1,
		hashtags:  []string{"#Azure"},
	},
	{
		id:      "comment_3",
		postID:  "post_1",
		content: "Registered on day one, see you there!",
		ageMin:  4,
		upvotes: 2,
	},
	{
		id:        "comment_4",
		postID:    "post_2",
		content:   "The new channels layout still confuses me honestly",
		ageMin:    8,
		upvotes:   9,
		downvotes: 4,
	},
	{
		id:      "comment_5",
		postID:  "post_2",
		content: "Breakout rooms finally work the way you'd expect",
		ageMin:  10,
		upvotes: 12,
	},
	{
		id:       "comment_6",
		postID:   "post_5",
		content:  "Pair it with voice input and it really does feel like pairing",
		ageMin:   20,
		upvotes:  7,
		hashtags: []string{"#Copilot"},
	},
}

// Seeder loads the fixture data set into the canonical collections.
// Seeded reply counts are not part of the fixtures; the engine resynchronizes
// them from the seeded comments immediately after Seed returns, so the
// replies invariant holds from the first instant.
type Seeder struct {
	posts    *PostRepository
	comments *CommentRepository
	now      func() time.Time
}

// NewSeeder creates a seeder over the given repositories.
func NewSeeder(postRepo *PostRepository, commentRepo *CommentRepository) *Seeder {
	return &Seeder{
		posts:    postRepo,
		comments: commentRepo,
		now:      time.Now,
	}
}

// Seed inserts the fixture posts and comments and returns the seeded post
// ids. Fixtures are inserted oldest-first so the newest entry ends up at the
// front of the prepend-ordered collections.
func (s *Seeder) Seed(ctx context.Context) ([]string, error) {
	now := s.now().UTC()

	postIDs := make([]string, 0, len(fixturePosts))
	for i := len(fixturePosts) - 1; i >= 0; i-- {
		f := fixturePosts[i]
		createdAt := now.Add(-time.Duration(f.ageMin) * time.Minute)
		err := s.posts.Create(ctx, &posts.Post{
			ID:        f.id,
			Content:   f.content,
			Timestamp: posts.RelativeAge(createdAt, now),
			CreatedAt: createdAt,
			Upvotes:   f.upvotes,
			Downvotes: f.downvotes,
			Hashtags:  f.hashtags,
		})
		if err != nil {
			return nil, err
		}
		postIDs = append(postIDs, f.id)
	}

	for i := len(fixtureComments) - 1; i >= 0; i-- {
		f := fixtureComments[i]
		createdAt := now.Add(-time.Duration(f.ageMin) * time.Minute)
		err := s.comments.Create(ctx, &comments.Comment{
			ID:        f.id,
			PostID:    f.postID,
			Content:   f.content,
			Timestamp: posts.RelativeAge(createdAt, now),
			CreatedAt: createdAt,
			Upvotes:   f.upvotes,
			Downvotes: f.downvotes,
			Hashtags:  f.hashtags,
		})
		if err != nil {
			return nil, err
		}
	}

	return postIDs, nil
}
