package catalog

// seedEvents is the full event catalog: 60 events from deep time to the
// present day. The catalog is fixed at build time; nothing creates or
// destroys events at runtime.
var seedEvents = []Event{
	// Deep time
	{
		ID:              "big-bang",
		Title:           "The Big Bang",
		Description:     "The universe begins in an unimaginably hot, dense state and has been expanding ever since.",
		QuizDescription: "The universe begins to expand from a single point",
		Date:            "13.8 billion years ago",
		Year:            -13_800_000_000,
		Location:        Location{Lat: 0, Lng: 0, Region: "Cosmos", Place: "Everywhere at once"},
		Category:        CategoryScience,
		Difficulty:      1,
	},
	{
		ID:              "formation-of-earth",
		Title:           "Formation of the Earth",
		Description:     "Dust and rock orbiting the young Sun clump together into a molten planet that slowly cools.",
		QuizDescription: "A molten planet forms around the young Sun",
		Date:            "4.5 billion years ago",
		Year:            -4_500_000_000,
		Location:        Location{Lat: 0, Lng: 0, Region: "Cosmos", Place: "The solar system"},
		Category:        CategoryScience,
		Difficulty:      1,
	},
	{
		ID:              "first-life",
		Title:           "First Life on Earth",
		Description:     "Single-celled organisms appear in the oceans, the earliest known living things.",
		QuizDescription: "Single-celled organisms appear in the oceans",
		Date:            "3.8 billion years ago",
		Year:            -3_800_000_000,
		Location:        Location{Lat: -26.0, Lng: 118.0, Region: "Oceania", Place: "Ancient oceans"},
		Category:        CategoryScience,
		Difficulty:      2,
	},
	{
		ID:              "dinosaur-extinction",
		Title:           "Extinction of the Dinosaurs",
		Description:     "An asteroid strikes the Yucatán peninsula, ending the age of dinosaurs and clearing the way for mammals.",
		QuizDescription: "An asteroid impact wipes out the dinosaurs",
		Date:            "66 million years ago",
		Year:            -66_000_000,
		Location:        Location{Lat: 21.4, Lng: -89.5, Region: "Americas", Place: "Chicxulub, Mexico"},
		Category:        CategoryScience,
		Difficulty:      1,
	},

	// Becoming human
	{
		ID:              "first-hominids",
		Title:           "First Hominids Walk Upright",
		Description:     "Early human ancestors in Africa begin walking on two legs, freeing their hands for tools.",
		QuizDescription: "Human ancestors begin walking on two legs",
		Date:            "7 million years ago",
		Year:            -7_000_000,
		Location:        Location{Lat: 16.2, Lng: 17.9, Region: "Africa", Place: "Chad, Central Africa"},
		Category:        CategoryScience,
		Difficulty:      2,
	},
	{
		ID:              "mastery-of-fire",
		Title:           "Mastery of Fire",
		Description:     "Early humans learn to control fire, transforming diet, warmth, and protection.",
		QuizDescription: "Early humans learn to control fire",
		Date:            "c. 400,000 years ago",
		Year:            -400_000,
		Location:        Location{Lat: 31.8, Lng: 35.2, Region: "Middle East", Place: "The Levant"},
		Category:        CategoryScience,
		Difficulty:      2,
	},
	{
		ID:              "homo-sapiens",
		Title:           "Homo Sapiens Emerges",
		Description:     "Anatomically modern humans appear in Africa and gradually spread across the globe.",
		QuizDescription: "Modern humans appear in Africa",
		Date:            "c. 300,000 years ago",
		Year:            -300_000,
		Location:        Location{Lat: 31.6, Lng: -7.6, Region: "Africa", Place: "Jebel Irhoud, Morocco"},
		Category:        CategoryScience,
		Difficulty:      1,
	},
	{
		ID:              "chauvet-cave-art",
		Title:           "Chauvet Cave Paintings",
		Description:     "Ice Age artists cover cave walls with lions, horses, and rhinos, among the oldest paintings known.",
		QuizDescription: "Ice Age artists paint animals on cave walls",
		Date:            "c. 36,000 years ago",
		Year:            -36_000,
		Location:        Location{Lat: 44.4, Lng: 4.4, Region: "Europe", Place: "Ardèche, France"},
		Category:        CategoryCulture,
		Difficulty:      2,
	},

	// The Neolithic revolution
	{
		ID:              "farming-begins",
		Title:           "Farming Begins",
		Description:     "People in the Fertile Crescent start sowing wheat and herding animals, settling into villages.",
		QuizDescription: "People start farming and settle in villages",
		Date:            "c. 10,000 BCE",
		Year:            -10_000,
		Location:        Location{Lat: 36.5, Lng: 40.0, Region: "Middle East", Place: "The Fertile Crescent"},
		Category:        CategoryScience,
		Difficulty:      1,
	},
	{
		ID:              "stonehenge",
		Title:           "Stonehenge Raised",
		Description:     "Neolithic builders haul massive stones across southern England and raise them into a ring aligned with the sun.",
		QuizDescription: "A ring of giant stones is raised in England",
		Date:            "c. 2500 BCE",
		Year:            -2500,
		Location:        Location{Lat: 51.2, Lng: -1.8, Region: "Europe", Place: "Wiltshire, England"},
		Category:        CategoryCulture,
		Difficulty:      2,
	},
	{
		ID:              "invention-of-writing",
		Title:           "Invention of Writing",
		Description:     "Sumerian scribes press wedge-shaped marks into clay to record grain and taxes. History begins.",
		QuizDescription: "Sumerians press the first written signs into clay",
		Date:            "c. 3300 BCE",
		Year:            -3300,
		Location:        Location{Lat: 31.0, Lng: 46.1, Region: "Middle East", Place: "Uruk, Mesopotamia"},
		Category:        CategoryCulture,
		Difficulty:      1,
	},
	{
		ID:              "great-pyramid",
		Title:           "Great Pyramid of Giza",
		Description:     "Tens of thousands of workers build Pharaoh Khufu a tomb that will remain the world's tallest structure for 3,800 years.",
		QuizDescription: "Egyptians build a colossal tomb for Pharaoh Khufu",
		Date:            "c. 2560 BCE",
		Year:            -2560,
		Location:        Location{Lat: 30.0, Lng: 31.1, Region: "Africa", Place: "Giza, Egypt"},
		Category:        CategoryCulture,
		Difficulty:      1,
	},

	// Ancient empires
	{
		ID:              "code-of-hammurabi",
		Title:           "Code of Hammurabi",
		Description:     "The Babylonian king has 282 laws carved in stone, one of the earliest written legal codes.",
		QuizDescription: "A Babylonian king carves his laws in stone",
		Date:            "c. 1754 BCE",
		Year:            -1754,
		Location:        Location{Lat: 32.5, Lng: 44.4, Region: "Middle East", Place: "Babylon"},
		Category:        CategoryPolitics,
		Difficulty:      3,
	},
	{
		ID:              "first-olympics",
		Title:           "First Olympic Games",
		Description:     "Greek city-states lay down their arms to compete in footraces at Olympia in honor of Zeus.",
		QuizDescription: "Greeks hold the first games at Olympia",
		Date:            "776 BCE",
		Year:            -776,
		Location:        Location{Lat: 37.6, Lng: 21.6, Region: "Europe", Place: "Olympia, Greece"},
		Category:        CategoryCulture,
		Difficulty:      1,
	},
	{
		ID:              "founding-of-rome",
		Title:           "Founding of Rome",
		Description:     "By legend, Romulus founds a village on the Palatine Hill that will grow into a world empire.",
		QuizDescription: "A village is founded on the Palatine Hill",
		Date:            "753 BCE",
		Year:            -753,
		Location:        Location{Lat: 41.9, Lng: 12.5, Region: "Europe", Place: "Rome, Italy"},
		Category:        CategoryPolitics,
		Difficulty:      2,
	},
	{
		ID:              "confucius-teaches",
		Title:           "Confucius Teaches in China",
		Description:     "A wandering scholar's lessons on duty and virtue shape Chinese thought for two and a half millennia.",
		QuizDescription: "A Chinese scholar teaches duty and virtue",
		Date:            "c. 500 BCE",
		Year:            -500,
		Location:        Location{Lat: 35.6, Lng: 117.0, Region: "Asia", Place: "Qufu, China"},
		Category:        CategoryCulture,
		Difficulty:      2,
	},

	// Classical Greece
	{
		ID:              "athenian-democracy",
		Title:           "Birth of Athenian Democracy",
		Description:     "Cleisthenes reorganizes Athens so that ordinary citizens vote on the laws that govern them.",
		QuizDescription: "Athenian citizens begin voting on their own laws",
		Date:            "508 BCE",
		Year:            -508,
		Location:        Location{Lat: 38.0, Lng: 23.7, Region: "Europe", Place: "Athens, Greece"},
		Category:        CategoryPolitics,
		Difficulty:      2,
	},
	{
		ID:              "battle-of-marathon",
		Title:           "Battle of Marathon",
		Description:     "Outnumbered Athenians rout a Persian invasion force on the plain of Marathon.",
		QuizDescription: "Athenians defeat a Persian invasion force",
		Date:            "490 BCE",
		Year:            -490,
		Location:        Location{Lat: 38.2, Lng: 24.0, Region: "Europe", Place: "Marathon, Greece"},
		Category:        CategoryWar,
		Difficulty:      2,
	},
	{
		ID:              "parthenon-built",
		Title:           "Building of the Parthenon",
		Description:     "Athens crowns its acropolis with a marble temple to Athena at the height of its golden age.",
		QuizDescription: "Athens builds a marble temple to Athena",
		Date:            "447–432 BCE",
		Year:            -447,
		YearEnd:         -432,
		HasEnd:          true,
		Location:        Location{Lat: 38.0, Lng: 23.7, Region: "Europe", Place: "Athens, Greece"},
		Category:        CategoryCulture,
		Difficulty:      2,
	},
	{
		ID:              "alexander-conquests",
		Title:           "Conquests of Alexander the Great",
		Description:     "In eleven years the Macedonian king conquers an empire stretching from Greece to India.",
		QuizDescription: "A Macedonian king conquers from Greece to India",
		Date:            "334–323 BCE",
		Year:            -334,
		YearEnd:         -323,
		HasEnd:          true,
		Location:        Location{Lat: 40.6, Lng: 22.9, Region: "Europe", Place: "Macedonia"},
		Category:        CategoryWar,
		Difficulty:      2,
	},

	// Rome: republic to empire
	{
		ID:              "caesar-assassinated",
		Title:           "Assassination of Julius Caesar",
		Description:     "Senators stab the dictator on the Ides of March, hoping to save a republic they end up burying.",
		QuizDescription: "Senators stab a dictator on the Ides of March",
		Date:            "44 BCE",
		Year:            -44,
		Location:        Location{Lat: 41.9, Lng: 12.5, Region: "Europe", Place: "Rome, Italy"},
		Category:        CategoryPolitics,
		Difficulty:      1,
	},
	{
		ID:              "augustus-first-emperor",
		Title:           "Augustus Becomes First Emperor",
		Description:     "Octavian takes the name Augustus and quietly turns the Roman Republic into an empire.",
		QuizDescription: "Octavian turns the Roman Republic into an empire",
		Date:            "27 BCE",
		Year:            -27,
		Location:        Location{Lat: 41.9, Lng: 12.5, Region: "Europe", Place: "Rome, Italy"},
		Category:        CategoryPolitics,
		Difficulty:      2,
	},
	{
		ID:              "colosseum-opens",
		Title:           "Colosseum Opens",
		Description:     "Rome inaugurates its vast amphitheatre with a hundred days of games before 50,000 spectators.",
		QuizDescription: "Rome opens a vast amphitheatre with 100 days of games",
		Date:            "80 CE",
		Year:            80,
		Location:        Location{Lat: 41.9, Lng: 12.5, Region: "Europe", Place: "Rome, Italy"},
		Category:        CategoryCulture,
		Difficulty:      2,
	},
	{
		ID:              "fall-of-rome",
		Title:           "Fall of the Western Roman Empire",
		Description:     "The last western emperor is deposed by the Germanic general Odoacer. Antiquity gives way to the Middle Ages.",
		QuizDescription: "The last western Roman emperor is deposed",
		Date:            "476 CE",
		Year:            476,
		Location:        Location{Lat: 44.4, Lng: 12.2, Region: "Europe", Place: "Ravenna, Italy"},
		Category:        CategoryPolitics,
		Difficulty:      1,
	},

	// Faith and empire
	{
		ID:              "crucifixion-of-jesus",
		Title:           "Crucifixion of Jesus",
		Description:     "A preacher from Galilee is executed in Jerusalem; the movement his followers build reshapes the world.",
		QuizDescription: "A preacher from Galilee is executed in Jerusalem",
		Date:            "c. 30 CE",
		Year:            30,
		Location:        Location{Lat: 31.8, Lng: 35.2, Region: "Middle East", Place: "Jerusalem"},
		Category:        CategoryCulture,
		Difficulty:      1,
	},
	{
		ID:              "hegira",
		Title:           "The Hegira",
		Description:     "Muhammad and his followers leave Mecca for Medina, year one of the Islamic calendar.",
		QuizDescription: "Muhammad leads his followers from Mecca to Medina",
		Date:            "622 CE",
		Year:            622,
		Location:        Location{Lat: 24.5, Lng: 39.6, Region: "Middle East", Place: "Medina, Arabia"},
		Category:        CategoryCulture,
		Difficulty:      2,
	},
	{
		ID:              "vikings-lindisfarne",
		Title:           "Viking Raid on Lindisfarne",
		Description:     "Norse raiders sack a holy island monastery off the English coast, opening the Viking Age.",
		QuizDescription: "Norse raiders sack an island monastery",
		Date:            "793 CE",
		Year:            793,
		Location:        Location{Lat: 55.7, Lng: -1.8, Region: "Europe", Place: "Lindisfarne, England"},
		Category:        CategoryWar,
		Difficulty:      3,
	},
	{
		ID:              "charlemagne-crowned",
		Title:           "Charlemagne Crowned Emperor",
		Description:     "On Christmas Day the Pope crowns the Frankish king emperor, reviving the imperial idea in the West.",
		QuizDescription: "The Pope crowns a Frankish king emperor",
		Date:            "800 CE",
		Year:            800,
		Location:        Location{Lat: 41.9, Lng: 12.5, Region: "Europe", Place: "Rome, Italy"},
		Category:        CategoryPolitics,
		Difficulty:      1,
	},

	// The medieval world
	{
		ID:              "battle-of-hastings",
		Title:           "Battle of Hastings",
		Description:     "William of Normandy defeats King Harold and takes the English crown, rewiring England's language and law.",
		QuizDescription: "A Norman duke conquers the English crown",
		Date:            "1066",
		Year:            1066,
		Location:        Location{Lat: 50.9, Lng: 0.5, Region: "Europe", Place: "Hastings, England"},
		Category:        CategoryWar,
		Difficulty:      1,
	},
	{
		ID:              "first-crusade",
		Title:           "The First Crusade",
		Description:     "European knights march east at the Pope's call and storm Jerusalem after a three-year campaign.",
		QuizDescription: "European knights march east and storm Jerusalem",
		Date:            "1096–1099",
		Year:            1096,
		YearEnd:         1099,
		HasEnd:          true,
		Location:        Location{Lat: 31.8, Lng: 35.2, Region: "Middle East", Place: "Jerusalem"},
		Category:        CategoryWar,
		Difficulty:      2,
	},
	{
		ID:              "notre-dame-built",
		Title:           "Building of Notre-Dame de Paris",
		Description:     "Generations of masons raise a Gothic cathedral of stone and stained glass on an island in the Seine.",
		QuizDescription: "Masons raise a Gothic cathedral on the Seine",
		Date:            "1163–1345",
		Year:            1163,
		YearEnd:         1345,
		HasEnd:          true,
		Location:        Location{Lat: 48.9, Lng: 2.3, Region: "Europe", Place: "Paris, France"},
		Category:        CategoryCulture,
		Difficulty:      2,
	},
	{
		ID:              "magna-carta",
		Title:           "Magna Carta Sealed",
		Description:     "Rebel barons force King John to seal a charter putting even the king under the law.",
		QuizDescription: "Barons force a king to accept limits on his power",
		Date:            "1215",
		Year:            1215,
		Location:        Location{Lat: 51.4, Lng: -0.6, Region: "Europe", Place: "Runnymede, England"},
		Category:        CategoryPolitics,
		Difficulty:      2,
	},

	// Mongols and plague
	{
		ID:              "mongol-empire",
		Title:           "The Mongol Empire",
		Description:     "From Genghis Khan's election to the fall of the Yuan, Mongol riders rule the largest land empire in history.",
		QuizDescription: "Riders from the steppe rule history's largest land empire",
		Date:            "1206–1368",
		Year:            1206,
		YearEnd:         1368,
		HasEnd:          true,
		Location:        Location{Lat: 47.8, Lng: 107.5, Region: "Asia", Place: "Mongolian steppe"},
		Category:        CategoryWar,
		Difficulty:      2,
	},
	{
		ID:              "marco-polo-travels",
		Title:           "Travels of Marco Polo",
		Description:     "A Venetian merchant spends two decades on the Silk Road and at the court of Kublai Khan.",
		QuizDescription: "A Venetian merchant journeys to the court of Kublai Khan",
		Date:            "1271–1295",
		Year:            1271,
		YearEnd:         1295,
		HasEnd:          true,
		Location:        Location{Lat: 45.4, Lng: 12.3, Region: "Europe", Place: "Venice, Italy"},
		Category:        CategoryCulture,
		Difficulty:      3,
	},
	{
		ID:              "black-death",
		Title:           "The Black Death",
		Description:     "Plague carried along trade routes kills perhaps half of Europe's population in four years.",
		QuizDescription: "A plague kills perhaps half of Europe",
		Date:            "1347–1351",
		Year:            1347,
		YearEnd:         1351,
		HasEnd:          true,
		Location:        Location{Lat: 45.0, Lng: 10.0, Region: "Europe", Place: "Across Europe"},
		Category:        CategoryScience,
		Difficulty:      1,
	},
	{
		ID:              "fall-of-constantinople",
		Title:           "Fall of Constantinople",
		Description:     "Ottoman cannon breach the thousand-year walls of Byzantium; the Roman story finally ends.",
		QuizDescription: "Ottoman cannon breach Byzantium's ancient walls",
		Date:            "1453",
		Year:            1453,
		Location:        Location{Lat: 41.0, Lng: 28.9, Region: "Middle East", Place: "Constantinople"},
		Category:        CategoryWar,
		Difficulty:      2,
	},

	// Renaissance and discovery
	{
		ID:              "gutenberg-press",
		Title:           "Gutenberg's Printing Press",
		Description:     "Movable metal type makes books cheap and plentiful, and ideas suddenly travel at the speed of paper.",
		QuizDescription: "Movable type makes books cheap and plentiful",
		Date:            "c. 1440",
		Year:            1440,
		Location:        Location{Lat: 50.0, Lng: 8.3, Region: "Europe", Place: "Mainz, Germany"},
		Category:        CategoryScience,
		Difficulty:      1,
	},
	{
		ID:              "columbus-reaches-america",
		Title:           "Columbus Reaches the Americas",
		Description:     "Seeking a westward route to Asia, Columbus lands in the Bahamas and joins two worlds that had grown apart.",
		QuizDescription: "A westward voyage to Asia lands in the Bahamas",
		Date:            "1492",
		Year:            1492,
		Location:        Location{Lat: 24.0, Lng: -74.5, Region: "Americas", Place: "San Salvador, Bahamas"},
		Category:        CategoryScience,
		Difficulty:      1,
	},
	{
		ID:              "mona-lisa",
		Title:           "Leonardo Paints the Mona Lisa",
		Description:     "A Florentine merchant's wife sits for Leonardo da Vinci; he carries the unfinished portrait for the rest of his life.",
		QuizDescription: "Leonardo paints a Florentine merchant's wife",
		Date:            "c. 1503",
		Year:            1503,
		Location:        Location{Lat: 43.8, Lng: 11.3, Region: "Europe", Place: "Florence, Italy"},
		Category:        CategoryCulture,
		Difficulty:      2,
	},
	{
		ID:              "magellan-circumnavigation",
		Title:           "First Circumnavigation of the Globe",
		Description:     "Magellan's expedition sets out with five ships; three years later one limps home, having sailed around the world.",
		QuizDescription: "One ship of five sails all the way around the world",
		Date:            "1519–1522",
		Year:            1519,
		YearEnd:         1522,
		HasEnd:          true,
		Location:        Location{Lat: 37.4, Lng: -6.0, Region: "Europe", Place: "Seville, Spain"},
		Category:        CategoryScience,
		Difficulty:      2,
	},

	// Reformation and the new science
	{
		ID:              "luther-theses",
		Title:           "Luther's Ninety-five Theses",
		Description:     "A monk's protest against the sale of indulgences splits Western Christianity in two.",
		QuizDescription: "A monk's protest splits Western Christianity",
		Date:            "1517",
		Year:            1517,
		Location:        Location{Lat: 51.9, Lng: 12.6, Region: "Europe", Place: "Wittenberg, Germany"},
		Category:        CategoryCulture,
		Difficulty:      2,
	},
	{
		ID:              "copernicus-heliocentrism",
		Title:           "Copernicus Publishes Heliocentrism",
		Description:     "On his deathbed a Polish canon publishes the book that moves the Earth and stops the Sun.",
		QuizDescription: "A book argues the Earth orbits the Sun",
		Date:            "1543",
		Year:            1543,
		Location:        Location{Lat: 54.0, Lng: 19.0, Region: "Europe", Place: "Frauenburg, Poland"},
		Category:        CategoryScience,
		Difficulty:      2,
	},
	{
		ID:              "galileo-telescope",
		Title:           "Galileo Turns a Telescope Skyward",
		Description:     "Galileo points a new Dutch instrument at the night sky and finds moons circling Jupiter.",
		QuizDescription: "A telescope reveals moons circling Jupiter",
		Date:            "1610",
		Year:            1610,
		Location:        Location{Lat: 45.4, Lng: 11.9, Region: "Europe", Place: "Padua, Italy"},
		Category:        CategoryScience,
		Difficulty:      2,
	},
	{
		ID:              "newton-principia",
		Title:           "Newton Publishes the Principia",
		Description:     "Three laws of motion and one of gravity explain both the falling apple and the orbiting Moon.",
		QuizDescription: "Three laws of motion explain apple and Moon alike",
		Date:            "1687",
		Year:            1687,
		Location:        Location{Lat: 52.2, Lng: 0.1, Region: "Europe", Place: "Cambridge, England"},
		Category:        CategoryScience,
		Difficulty:      2,
	},

	// Age of revolutions
	{
		ID:              "american-independence",
		Title:           "American Declaration of Independence",
		Description:     "Thirteen colonies declare that governments derive their powers from the consent of the governed.",
		QuizDescription: "Thirteen colonies declare themselves free states",
		Date:            "1776",
		Year:            1776,
		Location:        Location{Lat: 39.9, Lng: -75.2, Region: "Americas", Place: "Philadelphia, USA"},
		Category:        CategoryRevolution,
		Difficulty:      1,
	},
	{
		ID:              "french-revolution",
		Title:           "The French Revolution Begins",
		Description:     "Parisians storm the Bastille; within months the old regime of kings and privileges starts to collapse.",
		QuizDescription: "Parisians storm a royal fortress-prison",
		Date:            "1789",
		Year:            1789,
		Location:        Location{Lat: 48.9, Lng: 2.4, Region: "Europe", Place: "Paris, France"},
		Category:        CategoryRevolution,
		Difficulty:      1,
	},
	{
		ID:              "battle-of-waterloo",
		Title:           "Battle of Waterloo",
		Description:     "Napoleon's final gamble fails on a muddy Belgian field, ending a quarter-century of European war.",
		QuizDescription: "Napoleon's last battle is lost on a Belgian field",
		Date:            "1815",
		Year:            1815,
		Location:        Location{Lat: 50.7, Lng: 4.4, Region: "Europe", Place: "Waterloo, Belgium"},
		Category:        CategoryWar,
		Difficulty:      1,
	},
	{
		ID:              "french-abolition-slavery",
		Title:           "France Abolishes Slavery",
		Description:     "The Second Republic abolishes slavery in all French colonies, definitively and immediately.",
		QuizDescription: "A republic definitively abolishes slavery in its colonies",
		Date:            "1848",
		Year:            1848,
		Location:        Location{Lat: 48.9, Lng: 2.3, Region: "Europe", Place: "Paris, France"},
		Category:        CategoryPolitics,
		Difficulty:      3,
	},

	// Industry and empire
	{
		ID:              "first-railway",
		Title:           "First Public Steam Railway",
		Description:     "The Stockton and Darlington line carries passengers behind a steam locomotive for the first time.",
		QuizDescription: "A steam locomotive pulls the first public passenger train",
		Date:            "1825",
		Year:            1825,
		Location:        Location{Lat: 54.5, Lng: -1.6, Region: "Europe", Place: "Darlington, England"},
		Category:        CategoryScience,
		Difficulty:      2,
	},
	{
		ID:              "darwin-origin",
		Title:           "Darwin Publishes On the Origin of Species",
		Description:     "Twenty years of hesitation end in a book arguing that all life descends from common ancestors.",
		QuizDescription: "A book argues all life shares common ancestors",
		Date:            "1859",
		Year:            1859,
		Location:        Location{Lat: 51.5, Lng: -0.1, Region: "Europe", Place: "London, England"},
		Category:        CategoryScience,
		Difficulty:      1,
	},
	{
		ID:              "us-civil-war",
		Title:           "American Civil War",
		Description:     "Four years of war between North and South end slavery in the United States at the cost of 600,000 lives.",
		QuizDescription: "A war between North and South ends slavery in the USA",
		Date:            "1861–1865",
		Year:            1861,
		YearEnd:         1865,
		HasEnd:          true,
		Location:        Location{Lat: 38.0, Lng: -78.5, Region: "Americas", Place: "United States"},
		Category:        CategoryWar,
		Difficulty:      1,
	},
	{
		ID:              "eiffel-tower",
		Title:           "Eiffel Tower Completed",
		Description:     "A temporary iron tower for the World's Fair becomes the permanent symbol of Paris.",
		QuizDescription: "A temporary iron tower becomes the symbol of Paris",
		Date:            "1889",
		Year:            1889,
		Location:        Location{Lat: 48.9, Lng: 2.3, Region: "Europe", Place: "Paris, France"},
		Category:        CategoryCulture,
		Difficulty:      1,
	},

	// The world wars
	{
		ID:              "world-war-one",
		Title:           "The First World War",
		Description:     "An assassination in Sarajevo drags the great powers into four years of industrial slaughter.",
		QuizDescription: "An assassination drags the great powers into war",
		Date:            "1914–1918",
		Year:            1914,
		YearEnd:         1918,
		HasEnd:          true,
		Location:        Location{Lat: 49.9, Lng: 2.9, Region: "Europe", Place: "The Western Front"},
		Category:        CategoryWar,
		Difficulty:      1,
	},
	{
		ID:              "russian-revolution",
		Title:           "The Russian Revolution",
		Description:     "The Bolsheviks seize power in Petrograd, pulling Russia out of the war and into communism.",
		QuizDescription: "Bolsheviks seize power in Petrograd",
		Date:            "1917",
		Year:            1917,
		Location:        Location{Lat: 59.9, Lng: 30.3, Region: "Europe", Place: "Petrograd, Russia"},
		Category:        CategoryRevolution,
		Difficulty:      2,
	},
	{
		ID:              "world-war-two",
		Title:           "The Second World War",
		Description:     "The deadliest war in history engulfs every continent and ends with the world redivided.",
		QuizDescription: "The deadliest war in history engulfs the world",
		Date:            "1939–1945",
		Year:            1939,
		YearEnd:         1945,
		HasEnd:          true,
		Location:        Location{Lat: 52.2, Lng: 21.0, Region: "Europe", Place: "Warsaw, Poland"},
		Category:        CategoryWar,
		Difficulty:      1,
	},
	{
		ID:              "hiroshima",
		Title:           "Atomic Bombing of Hiroshima",
		Description:     "A single bomb destroys a city and opens the nuclear age.",
		QuizDescription: "A single bomb destroys a city",
		Date:            "1945",
		Year:            1945,
		Location:        Location{Lat: 34.4, Lng: 132.5, Region: "Asia", Place: "Hiroshima, Japan"},
		Category:        CategoryWar,
		Difficulty:      1,
	},

	// The modern world
	{
		ID:              "moon-landing",
		Title:           "First Humans on the Moon",
		Description:     "Apollo 11 lands in the Sea of Tranquility and Neil Armstrong takes one small step.",
		QuizDescription: "Apollo 11 lands in the Sea of Tranquility",
		Date:            "1969",
		Year:            1969,
		Location:        Location{Lat: 28.6, Lng: -80.6, Region: "Americas", Place: "Cape Kennedy → the Moon"},
		Category:        CategoryScience,
		Difficulty:      1,
	},
	{
		ID:              "fall-berlin-wall",
		Title:           "Fall of the Berlin Wall",
		Description:     "East Berliners pour through the checkpoints as the Cold War's concrete symbol comes down overnight.",
		QuizDescription: "A concrete wall through a city comes down overnight",
		Date:            "1989",
		Year:            1989,
		Location:        Location{Lat: 52.5, Lng: 13.4, Region: "Europe", Place: "Berlin, Germany"},
		Category:        CategoryRevolution,
		Difficulty:      1,
	},
	{
		ID:              "world-wide-web",
		Title:           "The World Wide Web Goes Public",
		Description:     "Tim Berners-Lee's hypertext system at CERN is released to everyone, for free, forever.",
		QuizDescription: "A hypertext system at CERN is released to everyone",
		Date:            "1991",
		Year:            1991,
		Location:        Location{Lat: 46.2, Lng: 6.1, Region: "Europe", Place: "CERN, Geneva"},
		Category:        CategoryScience,
		Difficulty:      2,
	},
	{
		ID:              "paris-agreement",
		Title:           "Paris Climate Agreement",
		Description:     "Nearly every nation on Earth agrees to limit global warming to well below two degrees.",
		QuizDescription: "Nearly every nation agrees to limit global warming",
		Date:            "2015",
		Year:            2015,
		Location:        Location{Lat: 48.9, Lng: 2.3, Region: "Europe", Place: "Paris, France"},
		Category:        CategoryPolitics,
		Difficulty:      2,
	},
}
