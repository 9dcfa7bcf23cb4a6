package catalog

import "streamify/models"

// FallbackFeed returns the fixed catalog shown when the live metadata
// collaborator fails. It is substituted whole: the home screen is either all
// live or all fallback, never a mix.
func FallbackFeed() *models.HomeFeed {
	return &models.HomeFeed{
		Degraded: true,
		Lists: []models.MovieList{
			{
				Title: "Most Rewatched by Members",
				Movies: []models.Movie{
					{
						ID: 1, Title: "Merlin",
						PosterPath:   "/gVwIJOkGIcg7kSGpXLJzKVhKNm6.jpg",
						BackdropPath: "/fm6KqXpk3M2HVveHwCrBSSBaO0V.jpg",
						Overview:     "A young warlock's adventures in Camelot.",
						VoteAverage:  8.3, ReleaseDate: "2008-09-20",
					},
					{
						ID: 2, Title: "S.W.A.T.",
						PosterPath:   "/gX4PJj9P3YKOIjxPolyEQQGhMJi.jpg",
						BackdropPath: "/ctMserH8g2SeOAnCw5gFjdQF8mo.jpg",
						Overview:     "Elite tactical unit takes on dangerous missions.",
						VoteAverage:  7.8, ReleaseDate: "2017-11-02",
					},
					{
						ID: 3, Title: "Young Sheldon",
						PosterPath:   "/tKwjkqTSq5fJdSxIk4yOh61tOKD.jpg",
						BackdropPath: "/yF1eOkaYvwiORauRCPWznV9xVvi.jpg",
						Overview:     "The childhood of Sheldon Cooper in East Texas.",
						VoteAverage:  8.1, ReleaseDate: "2017-09-25",
					},
				},
			},
			{
				Title: "US TV Horror",
				Movies: []models.Movie{
					{
						ID: 4, Title: "Prank Encounters",
						PosterPath:   "/aWlwUzWXWCE0RhzVj7SFOQmg3jA.jpg",
						BackdropPath: "/7RyHsO4yDXtBv1zUU3mTpHeQ0d5.jpg",
						Overview:     "Hidden camera horror pranks on unsuspecting people.",
						VoteAverage:  6.2, ReleaseDate: "2019-10-25",
					},
					{
						ID: 5, Title: "iZombie",
						PosterPath:   "/q4nqNwAhzVR7JuYctrWJvUsCnmX.jpg",
						BackdropPath: "/o0s4XsEDfDlvit5pDRKjzXR4pp2.jpg",
						Overview:     "A zombie medical examiner solves crimes.",
						VoteAverage:  7.9, ReleaseDate: "2015-03-17",
					},
					{
						ID: 6, Title: "Santa Clarita Diet",
						PosterPath:   "/hz298a3RXi9f4pR32MhNyZeKqgK.jpg",
						BackdropPath: "/mCVcUXqqIm0dBDMqnzzCNBBFKZP.jpg",
						Overview:     "A realtor's life changes after she becomes undead.",
						VoteAverage:  7.5, ReleaseDate: "2017-02-03",
					},
				},
			},
			{
				Title: "Exciting US Sci-Fi TV",
				Movies: []models.Movie{
					{
						ID: 7, Title: "Timeless",
						PosterPath:   "/7CozRNKmshrSu9xbUHlCBp6aNxF.jpg",
						BackdropPath: "/gQ9G67LwX2k3Kmt1hV1Qc4P21Fv.jpg",
						Overview:     "Time travelers prevent historical disasters.",
						VoteAverage:  8.0, ReleaseDate: "2016-10-03",
					},
					{
						ID: 8, Title: "Away",
						PosterPath:   "/yxMpoHO0CXP5o9gB7IfsciP6OPC.jpg",
						BackdropPath: "/gQ9G67LwX2k3Kmt1hV1Qc4P2dYQ.jpg",
						Overview:     "The first mission to Mars faces challenges.",
						VoteAverage:  7.1, ReleaseDate: "2020-09-04",
					},
				},
			},
		},
	}
}

// FallbackDetail is the fixed single-title record shown when a detail fetch
// fails.
func FallbackDetail() *models.MovieDetail {
	return &models.MovieDetail{
		Movie: models.Movie{
			ID: 763212, Title: "Lift",
			PosterPath:   "/gma8o1jWaSc6c31p94I1p2h53M6.jpg",
			BackdropPath: "/gQ9G67LwX2k3Kmt1hV1Qc4P21Fv.jpg",
			Overview:     "An international heist crew, led by Cyrus Whitaker, races to lift $500 million in gold from a passenger plane at 40,000 feet.",
			VoteAverage:  6.5, ReleaseDate: "2024-01-10",
		},
		Genres: []models.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}},
	}
}

// FeaturedMovie is the fixed hero title on the home screen.
func FeaturedMovie() models.Movie {
	return models.Movie{
		ID: 999, Title: "Snow White & The Huntsman",
		BackdropPath: "/gQ9G67LwX2k3Kmt1hV1Qc4P21Fv.jpg",
		Overview:     "In a twist to the fairy tale, the Huntsman ordered to take Snow White into the woods to be killed winds up becoming her protector and mentor in a quest to vanquish the Evil Queen.",
		VoteAverage:  7.2, ReleaseDate: "2012-05-30",
	}
}
