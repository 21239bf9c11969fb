package catalog

// seedLessons defines the 16 lessons in play order. Lesson 1 is the
// introductory eras lesson; the rest walk the catalog chronologically.
var seedLessons = []Lesson{
	{
		ID:        "the-five-eras",
		Number:    1,
		Title:     "The Five Eras",
		Subtitle:  "A map of all of time",
		Mood:      "Before the events, the shape of the whole story.",
		EventIDs:  []string{"prehistory", "antiquity", "middle-ages", "early-modern", "contemporary"},
		EraLesson: true,
	},
	{
		ID:       "deep-time",
		Number:   2,
		Title:    "Deep Time",
		Subtitle: "From the Big Bang to the dinosaurs",
		Mood:     "Almost everything that ever happened, happened before anyone was there to see it.",
		PeriodID: "prehistory",
		EventIDs: []string{"big-bang", "formation-of-earth", "first-life", "dinosaur-extinction"},
	},
	{
		ID:       "becoming-human",
		Number:   3,
		Title:    "Becoming Human",
		Subtitle: "Upright apes, fire, and the first art",
		Mood:     "Seven million years to learn to walk, talk, and paint lions in the dark.",
		PeriodID: "prehistory",
		EventIDs: []string{"first-hominids", "mastery-of-fire", "homo-sapiens", "chauvet-cave-art"},
	},
	{
		ID:       "settling-down",
		Number:   4,
		Title:    "Settling Down",
		Subtitle: "Farms, stones, and the first words",
		Mood:     "The moment people stopped chasing dinner, history could begin.",
		EventIDs: []string{"farming-begins", "stonehenge", "invention-of-writing", "great-pyramid"},
	},
	{
		ID:       "ancient-empires",
		Number:   5,
		Title:    "Ancient Empires",
		Subtitle: "Laws, games, and new cities",
		Mood:     "Kings carved their rules in stone so no one could pretend to forget.",
		PeriodID: "antiquity",
		EventIDs: []string{"code-of-hammurabi", "first-olympics", "founding-of-rome", "confucius-teaches"},
	},
	{
		ID:       "classical-greece",
		Number:   6,
		Title:    "Classical Greece",
		Subtitle: "Votes, marathons, and marble",
		Mood:     "A few small cities argued their way into everything we still argue about.",
		EventIDs: []string{"athenian-democracy", "battle-of-marathon", "parthenon-built", "alexander-conquests"},
	},
	{
		ID:       "rome-republic-to-empire",
		Number:   7,
		Title:    "Rome: Republic to Empire",
		Subtitle: "Daggers, emperors, and games",
		Mood:     "Rome spent five centuries building a republic and one afternoon losing it.",
		EventIDs: []string{"caesar-assassinated", "augustus-first-emperor", "colosseum-opens", "fall-of-rome"},
	},
	{
		ID:       "faith-and-empire",
		Number:   8,
		Title:    "Faith and Empire",
		Subtitle: "Prophets, raiders, and crowns",
		Mood:     "New faiths crossed deserts and seas faster than any army.",
		PeriodID: "middle-ages",
		EventIDs: []string{"crucifixion-of-jesus", "hegira", "vikings-lindisfarne", "charlemagne-crowned"},
	},
	{
		ID:       "the-medieval-world",
		Number:   9,
		Title:    "The Medieval World",
		Subtitle: "Conquests, cathedrals, and charters",
		Mood:     "Castles on the hills, cathedrals in the towns, and ink slowly beating iron.",
		EventIDs: []string{"battle-of-hastings", "first-crusade", "notre-dame-built", "magna-carta"},
	},
	{
		ID:       "riders-and-plague",
		Number:   10,
		Title:    "Riders and Plague",
		Subtitle: "The Mongols, the Silk Road, and the Black Death",
		Mood:     "The world was stitched together by horsemen and merchants, and disease rode along.",
		EventIDs: []string{"mongol-empire", "marco-polo-travels", "black-death", "fall-of-constantinople"},
	},
	{
		ID:       "renaissance-and-discovery",
		Number:   11,
		Title:    "Renaissance and Discovery",
		Subtitle: "Print, voyages, and a famous smile",
		Mood:     "Europe rediscovered the old world and stumbled into a new one.",
		PeriodID: "early-modern",
		EventIDs: []string{"gutenberg-press", "columbus-reaches-america", "mona-lisa", "magellan-circumnavigation"},
	},
	{
		ID:       "new-heavens",
		Number:   12,
		Title:    "New Heavens",
		Subtitle: "Reformers and stargazers",
		Mood:     "A monk moved the church and an astronomer moved the Earth.",
		EventIDs: []string{"luther-theses", "copernicus-heliocentrism", "galileo-telescope", "newton-principia"},
	},
	{
		ID:       "age-of-revolutions",
		Number:   13,
		Title:    "Age of Revolutions",
		Subtitle: "Declarations, bastilles, and battlefields",
		Mood:     "People stopped asking kings for permission.",
		PeriodID: "contemporary",
		EventIDs: []string{"american-independence", "french-revolution", "battle-of-waterloo", "french-abolition-slavery"},
	},
	{
		ID:       "industry-and-empire",
		Number:   14,
		Title:    "Industry and Empire",
		Subtitle: "Steam, species, and steel",
		Mood:     "The world sped up, and nothing has slowed down since.",
		EventIDs: []string{"first-railway", "darwin-origin", "us-civil-war", "eiffel-tower"},
	},
	{
		ID:       "the-world-wars",
		Number:   15,
		Title:    "The World Wars",
		Subtitle: "Thirty years that broke the old world",
		Mood:     "Twice in one lifetime, everything everywhere was at stake.",
		EventIDs: []string{"world-war-one", "russian-revolution", "world-war-two", "hiroshima"},
	},
	{
		ID:       "the-modern-world",
		Number:   16,
		Title:    "The Modern World",
		Subtitle: "Moons, walls, and webs",
		Mood:     "The part of history you can ask your grandparents about.",
		EventIDs: []string{"moon-landing", "fall-berlin-wall", "world-wide-web", "paris-agreement"},
	},
}
