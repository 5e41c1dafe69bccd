package questions

// CuratedBank returns the built-in question pools keyed by genre.
func CuratedBank() map[string][]Record {
	return curatedBank
}

var curatedBank = map[string][]Record{
	"sports": {
		{Text: "How many players are on a basketball team on the court?", Options: []string{"4", "5", "6", "7"}, CorrectAnswer: "5", Topic: "Sports"},
		{Text: "Which country won the 2018 FIFA World Cup?", Options: []string{"Brazil", "Germany", "France", "Argentina"}, CorrectAnswer: "France", Topic: "Sports"},
		{Text: "In which sport would you perform a 'slam dunk'?", Options: []string{"Volleyball", "Basketball", "Tennis", "Baseball"}, CorrectAnswer: "Basketball", Topic: "Sports"},
		{Text: "How many Grand Slam tournaments are there in tennis?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4", Topic: "Sports"},
		{Text: "How long is an Olympic swimming pool in meters?", Options: []string{"25", "50", "75", "100"}, CorrectAnswer: "50", Topic: "Sports"},
		{Text: "Which sport is known as 'The Beautiful Game'?", Options: []string{"Basketball", "Baseball", "Soccer", "Tennis"}, CorrectAnswer: "Soccer", Topic: "Sports"},
		{Text: "How many holes are played in a standard round of golf?", Options: []string{"9", "12", "18", "24"}, CorrectAnswer: "18", Topic: "Sports"},
		{Text: "Which Grand Slam tennis tournament is played on grass?", Options: []string{"US Open", "French Open", "Wimbledon", "Australian Open"}, CorrectAnswer: "Wimbledon", Topic: "Sports"},
	},
	"movies": {
		{Text: "Who directed 'The Shawshank Redemption'?", Options: []string{"Steven Spielberg", "Frank Darabont", "Martin Scorsese", "Quentin Tarantino"}, CorrectAnswer: "Frank Darabont", Topic: "Movies"},
		{Text: "What year was the first 'Star Wars' movie released?", Options: []string{"1975", "1977", "1979", "1980"}, CorrectAnswer: "1977", Topic: "Movies"},
		{Text: "Which movie won the Oscar for Best Picture in 2020?", Options: []string{"1917", "Joker", "Parasite", "Once Upon a Time in Hollywood"}, CorrectAnswer: "Parasite", Topic: "Movies"},
		{Text: "Who played Iron Man in the Marvel Cinematic Universe?", Options: []string{"Chris Evans", "Robert Downey Jr.", "Chris Hemsworth", "Mark Ruffalo"}, CorrectAnswer: "Robert Downey Jr.", Topic: "Movies"},
		{Text: "Who directed 'Pulp Fiction'?", Options: []string{"Martin Scorsese", "Quentin Tarantino", "Steven Spielberg", "Christopher Nolan"}, CorrectAnswer: "Quentin Tarantino", Topic: "Movies"},
		{Text: "Who played the Joker in 'The Dark Knight'?", Options: []string{"Jack Nicholson", "Jared Leto", "Heath Ledger", "Joaquin Phoenix"}, CorrectAnswer: "Heath Ledger", Topic: "Movies"},
		{Text: "What was the first Pixar movie?", Options: []string{"Finding Nemo", "Toy Story", "A Bug's Life", "Monsters Inc."}, CorrectAnswer: "Toy Story", Topic: "Movies"},
		{Text: "Who directed 'Jurassic Park'?", Options: []string{"James Cameron", "Steven Spielberg", "George Lucas", "Ridley Scott"}, CorrectAnswer: "Steven Spielberg", Topic: "Movies"},
	},
	"music": {
		{Text: "Who is known as the 'King of Pop'?", Options: []string{"Elvis Presley", "Michael Jackson", "Prince", "Madonna"}, CorrectAnswer: "Michael Jackson", Topic: "Music"},
		{Text: "Which band released the album 'Abbey Road'?", Options: []string{"The Rolling Stones", "The Beatles", "Led Zeppelin", "Pink Floyd"}, CorrectAnswer: "The Beatles", Topic: "Music"},
		{Text: "What instrument does Yo-Yo Ma play?", Options: []string{"Violin", "Piano", "Cello", "Harp"}, CorrectAnswer: "Cello", Topic: "Music"},
		{Text: "Who sang 'Purple Rain'?", Options: []string{"Prince", "Michael Jackson", "Whitney Houston", "Stevie Wonder"}, CorrectAnswer: "Prince", Topic: "Music"},
		{Text: "Which band wrote the song 'Bohemian Rhapsody'?", Options: []string{"The Beatles", "Queen", "Led Zeppelin", "Pink Floyd"}, CorrectAnswer: "Queen", Topic: "Music"},
		{Text: "Which rapper's real name is Marshall Mathers?", Options: []string{"Jay-Z", "Eminem", "Snoop Dogg", "Dr. Dre"}, CorrectAnswer: "Eminem", Topic: "Music"},
		{Text: "Who is known as the 'Queen of Soul'?", Options: []string{"Diana Ross", "Whitney Houston", "Aretha Franklin", "Etta James"}, CorrectAnswer: "Aretha Franklin", Topic: "Music"},
		{Text: "Who composed the 'Four Seasons'?", Options: []string{"Mozart", "Bach", "Vivaldi", "Beethoven"}, CorrectAnswer: "Vivaldi", Topic: "Music"},
	},
	"science": {
		{Text: "What is the chemical symbol for gold?", Options: []string{"Go", "Au", "Gd", "Ag"}, CorrectAnswer: "Au", Topic: "Science"},
		{Text: "How many planets are in our solar system?", Options: []string{"7", "8", "9", "10"}, CorrectAnswer: "8", Topic: "Science"},
		{Text: "What is the largest organ in the human body?", Options: []string{"Heart", "Brain", "Liver", "Skin"}, CorrectAnswer: "Skin", Topic: "Science"},
		{Text: "What is the hardest natural substance on Earth?", Options: []string{"Gold", "Iron", "Diamond", "Platinum"}, CorrectAnswer: "Diamond", Topic: "Science"},
		{Text: "What planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, CorrectAnswer: "Mars", Topic: "Science"},
		{Text: "What is the powerhouse of the cell?", Options: []string{"Nucleus", "Ribosome", "Mitochondria", "Chloroplast"}, CorrectAnswer: "Mitochondria", Topic: "Science"},
		{Text: "What is the most abundant gas in Earth's atmosphere?", Options: []string{"Oxygen", "Carbon Dioxide", "Nitrogen", "Hydrogen"}, CorrectAnswer: "Nitrogen", Topic: "Science"},
		{Text: "What is the largest planet in our solar system?", Options: []string{"Saturn", "Jupiter", "Neptune", "Uranus"}, CorrectAnswer: "Jupiter", Topic: "Science"},
	},
	"history": {
		{Text: "In what year did World War II end?", Options: []string{"1943", "1944", "1945", "1946"}, CorrectAnswer: "1945", Topic: "History"},
		{Text: "Who was the first President of the United States?", Options: []string{"Thomas Jefferson", "John Adams", "George Washington", "Benjamin Franklin"}, CorrectAnswer: "George Washington", Topic: "History"},
		{Text: "What year did the Berlin Wall fall?", Options: []string{"1987", "1988", "1989", "1990"}, CorrectAnswer: "1989", Topic: "History"},
		{Text: "Who painted the Mona Lisa?", Options: []string{"Michelangelo", "Leonardo da Vinci", "Raphael", "Donatello"}, CorrectAnswer: "Leonardo da Vinci", Topic: "History"},
		{Text: "Who was the first man to walk on the moon?", Options: []string{"Buzz Aldrin", "Neil Armstrong", "Yuri Gagarin", "John Glenn"}, CorrectAnswer: "Neil Armstrong", Topic: "History"},
		{Text: "What year did the Titanic sink?", Options: []string{"1910", "1912", "1914", "1916"}, CorrectAnswer: "1912", Topic: "History"},
		{Text: "Which civilization built the pyramids?", Options: []string{"Romans", "Greeks", "Egyptians", "Persians"}, CorrectAnswer: "Egyptians", Topic: "History"},
		{Text: "Who invented the telephone?", Options: []string{"Thomas Edison", "Nikola Tesla", "Alexander Graham Bell", "Guglielmo Marconi"}, CorrectAnswer: "Alexander Graham Bell", Topic: "History"},
	},
	"geography": {
		{Text: "What is the capital of Australia?", Options: []string{"Sydney", "Melbourne", "Canberra", "Brisbane"}, CorrectAnswer: "Canberra", Topic: "Geography"},
		{Text: "Which river is the longest in the world?", Options: []string{"Amazon", "Nile", "Yangtze", "Mississippi"}, CorrectAnswer: "Nile", Topic: "Geography"},
		{Text: "How many continents are there?", Options: []string{"5", "6", "7", "8"}, CorrectAnswer: "7", Topic: "Geography"},
		{Text: "What is the smallest country in the world?", Options: []string{"Monaco", "Vatican City", "San Marino", "Liechtenstein"}, CorrectAnswer: "Vatican City", Topic: "Geography"},
		{Text: "What is the highest mountain in the world?", Options: []string{"K2", "Mount Everest", "Kangchenjunga", "Makalu"}, CorrectAnswer: "Mount Everest", Topic: "Geography"},
		{Text: "Which ocean is the largest?", Options: []string{"Atlantic", "Indian", "Pacific", "Arctic"}, CorrectAnswer: "Pacific", Topic: "Geography"},
		{Text: "What is the capital of Japan?", Options: []string{"Osaka", "Kyoto", "Tokyo", "Yokohama"}, CorrectAnswer: "Tokyo", Topic: "Geography"},
		{Text: "What is the largest island in the world?", Options: []string{"Australia", "Greenland", "New Guinea", "Borneo"}, CorrectAnswer: "Greenland", Topic: "Geography"},
	},
	"pop-culture": {
		{Text: "Who is the author of Harry Potter?", Options: []string{"J.R.R. Tolkien", "J.K. Rowling", "Stephen King", "George R.R. Martin"}, CorrectAnswer: "J.K. Rowling", Topic: "Pop Culture"},
		{Text: "Which video game character is known for eating mushrooms?", Options: []string{"Sonic", "Mario", "Link", "Pac-Man"}, CorrectAnswer: "Mario", Topic: "Pop Culture"},
		{Text: "What year was Facebook founded?", Options: []string{"2002", "2004", "2006", "2008"}, CorrectAnswer: "2004", Topic: "Pop Culture"},
		{Text: "What is the name of the coffee shop in 'Friends'?", Options: []string{"Central Perk", "Java Joe's", "Brew Haven", "Coffee Spot"}, CorrectAnswer: "Central Perk", Topic: "Pop Culture"},
		{Text: "What is the name of the fictional kingdom in 'Frozen'?", Options: []string{"Atlantis", "Narnia", "Arendelle", "Camelot"}, CorrectAnswer: "Arendelle", Topic: "Pop Culture"},
		{Text: "Who voiced Woody in 'Toy Story'?", Options: []string{"Tim Allen", "Tom Hanks", "Bill Murray", "Robin Williams"}, CorrectAnswer: "Tom Hanks", Topic: "Pop Culture"},
		{Text: "Which app is known for short-form videos?", Options: []string{"Instagram", "Snapchat", "TikTok", "Vine"}, CorrectAnswer: "TikTok", Topic: "Pop Culture"},
		{Text: "What year did the first iPhone release?", Options: []string{"2005", "2007", "2009", "2011"}, CorrectAnswer: "2007", Topic: "Pop Culture"},
	},
	"food-drink": {
		{Text: "What is the main ingredient in guacamole?", Options: []string{"Tomato", "Avocado", "Pepper", "Onion"}, CorrectAnswer: "Avocado", Topic: "Food & Drink"},
		{Text: "Which country is the origin of the cocktail Mojito?", Options: []string{"Mexico", "Cuba", "Brazil", "Spain"}, CorrectAnswer: "Cuba", Topic: "Food & Drink"},
		{Text: "What is the most expensive spice in the world?", Options: []string{"Vanilla", "Saffron", "Cardamom", "Cinnamon"}, CorrectAnswer: "Saffron", Topic: "Food & Drink"},
		{Text: "Which country invented pizza?", Options: []string{"France", "Greece", "Italy", "Spain"}, CorrectAnswer: "Italy", Topic: "Food & Drink"},
		{Text: "What is the main ingredient in hummus?", Options: []string{"Lentils", "Chickpeas", "Black beans", "Kidney beans"}, CorrectAnswer: "Chickpeas", Topic: "Food & Drink"},
		{Text: "What type of alcohol is made from agave?", Options: []string{"Rum", "Tequila", "Vodka", "Gin"}, CorrectAnswer: "Tequila", Topic: "Food & Drink"},
		{Text: "Which cheese is traditionally used on pizza?", Options: []string{"Cheddar", "Mozzarella", "Parmesan", "Gouda"}, CorrectAnswer: "Mozzarella", Topic: "Food & Drink"},
		{Text: "Which nut is used to make marzipan?", Options: []string{"Walnut", "Cashew", "Almond", "Pistachio"}, CorrectAnswer: "Almond", Topic: "Food & Drink"},
	},
	"technology": {
		{Text: "Who is the founder of Microsoft?", Options: []string{"Steve Jobs", "Bill Gates", "Mark Zuckerberg", "Elon Musk"}, CorrectAnswer: "Bill Gates", Topic: "Technology"},
		{Text: "What does 'HTTP' stand for?", Options: []string{"HyperText Transfer Protocol", "High Tech Transfer Protocol", "Home Tool Transfer Protocol", "HyperText Transmission Process"}, CorrectAnswer: "HyperText Transfer Protocol", Topic: "Technology"},
		{Text: "What does 'CPU' stand for?", Options: []string{"Central Processing Unit", "Computer Personal Unit", "Central Processor Universal", "Computer Processing Utility"}, CorrectAnswer: "Central Processing Unit", Topic: "Technology"},
		{Text: "Which company developed the Android operating system?", Options: []string{"Apple", "Microsoft", "Google", "Samsung"}, CorrectAnswer: "Google", Topic: "Technology"},
		{Text: "What is the name of Apple's virtual assistant?", Options: []string{"Alexa", "Cortana", "Siri", "Google Assistant"}, CorrectAnswer: "Siri", Topic: "Technology"},
		{Text: "Who founded Tesla Motors?", Options: []string{"Bill Gates", "Steve Jobs", "Elon Musk", "Jeff Bezos"}, CorrectAnswer: "Elon Musk", Topic: "Technology"},
		{Text: "What does 'RAM' stand for?", Options: []string{"Random Access Memory", "Rapid Access Memory", "Read Access Memory", "Remote Access Memory"}, CorrectAnswer: "Random Access Memory", Topic: "Technology"},
		{Text: "What is the name of Google's web browser?", Options: []string{"Firefox", "Safari", "Chrome", "Edge"}, CorrectAnswer: "Chrome", Topic: "Technology"},
	},
	"games": {
		{Text: "What is the best-selling video game of all time?", Options: []string{"Tetris", "Minecraft", "GTA V", "Wii Sports"}, CorrectAnswer: "Minecraft", Topic: "Games"},
		{Text: "In which year was the first Super Mario Bros. game released?", Options: []string{"1983", "1985", "1987", "1989"}, CorrectAnswer: "1985", Topic: "Games"},
		{Text: "What is the name of the main character in The Legend of Zelda?", Options: []string{"Zelda", "Link", "Ganon", "Mario"}, CorrectAnswer: "Link", Topic: "Games"},
		{Text: "Which game features the character 'Master Chief'?", Options: []string{"Call of Duty", "Halo", "Destiny", "Gears of War"}, CorrectAnswer: "Halo", Topic: "Games"},
		{Text: "What is the currency called in Fortnite?", Options: []string{"Gold", "Credits", "V-Bucks", "Coins"}, CorrectAnswer: "V-Bucks", Topic: "Games"},
		{Text: "Which game series features the character Kratos?", Options: []string{"God of War", "Devil May Cry", "Dark Souls", "Assassin's Creed"}, CorrectAnswer: "God of War", Topic: "Games"},
		{Text: "What is the name of the default skin in Minecraft?", Options: []string{"Alex", "Steve", "Creeper", "Enderman"}, CorrectAnswer: "Steve", Topic: "Games"},
		{Text: "Which game popularized the 'battle royale' genre?", Options: []string{"Fortnite", "PUBG", "Apex Legends", "H1Z1"}, CorrectAnswer: "PUBG", Topic: "Games"},
	},
}
