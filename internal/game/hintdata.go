package game

// characterFacts holds curated per-character hints keyed by canonical full
// name. Each entry offers three angles on the character so repeated hint
// requests stay varied.
type characterFact struct {
	Appearance string
	Ability    string
	Role       string
	Series     string
}

var characterFacts = map[string]characterFact{
	"Monkey D. Luffy": {
		Appearance: "Wears a straw hat and red vest",
		Ability:    "Has rubber-like stretching abilities",
		Role:       "Captain of the Straw Hat Pirates",
		Series:     "One Piece",
	},
	"Naruto Uzumaki": {
		Appearance: "Wears orange and has whisker marks on face",
		Ability:    "Uses shadow clone jutsu techniques",
		Role:       "A ninja who dreams of becoming Hokage",
		Series:     "Naruto",
	},
	"Goku": {
		Appearance: "Has spiky black hair and wears an orange gi",
		Ability:    "Can transform into different power levels",
		Role:       "One of the strongest fighters in the universe",
		Series:     "Dragon Ball",
	},
	"Vegeta": {
		Appearance: "Has pointy black hair and often wears armor",
		Ability:    "Pride-filled warrior with incredible strength",
		Role:       "Rival and eventual ally to the main hero",
		Series:     "Dragon Ball",
	},
	"Eren Yeager": {
		Appearance: "Dark hair and intense expression",
		Ability:    "Can transform into a powerful form",
		Role:       "Former soldier who fights for freedom",
		Series:     "Attack on Titan",
	},
	"Mikasa Ackerman": {
		Appearance: "Has short black hair and wears a red scarf",
		Ability:    "Extremely skilled with blades and combat",
		Role:       "Protective and loyal fighter",
		Series:     "Attack on Titan",
	},
	"Levi Ackerman": {
		Appearance: "Short stature with an undercut hairstyle",
		Ability:    "Known as humanity's strongest soldier",
		Role:       "Captain with exceptional combat skills",
		Series:     "Attack on Titan",
	},
	"Edward Elric": {
		Appearance: "Blonde hair in a braid and red coat",
		Ability:    "Can perform alchemy without a transmutation circle",
		Role:       "Young alchemist searching for the philosopher's stone",
		Series:     "Fullmetal Alchemist",
	},
	"Alphonse Elric": {
		Appearance: "Often seen in distinctive armor",
		Ability:    "Skilled alchemist with a gentle personality",
		Role:       "Younger brother with a unique condition",
		Series:     "Fullmetal Alchemist",
	},
	"Sasuke Uchiha": {
		Appearance: "Dark hair with a serious expression",
		Ability:    "Has special red eyes with unique powers",
		Role:       "Skilled ninja seeking vengeance",
		Series:     "Naruto",
	},
	"Kakashi Hatake": {
		Appearance: "Wears a mask and has silver hair",
		Ability:    "Known for copying techniques with his special eye",
		Role:       "Elite ninja who teaches younger ninjas",
		Series:     "Naruto",
	},
	"Itachi Uchiha": {
		Appearance: "Has lines under his eyes and wears a cloak with red clouds",
		Ability:    "Master of illusion techniques",
		Role:       "Mysterious character with hidden motivations",
		Series:     "Naruto",
	},
	"Gon Freecss": {
		Appearance: "Spiky green-tinted hair and usually smiling",
		Ability:    "Has incredible senses and determination",
		Role:       "Young hunter searching for his father",
		Series:     "Hunter x Hunter",
	},
	"Killua Zoldyck": {
		Appearance: "Silver-white hair and cat-like eyes",
		Ability:    "Has lightning-fast reflexes and speed",
		Role:       "Former assassin with incredible potential",
		Series:     "Hunter x Hunter",
	},
	"Light Yagami": {
		Appearance: "Clean-cut appearance with brown hair",
		Ability:    "Exceptional intelligence and planning skills",
		Role:       "Student with a secret double life",
		Series:     "Death Note",
	},
	"L Lawliet": {
		Appearance: "Messy black hair with dark circles under eyes",
		Ability:    "Genius detective with unusual habits",
		Role:       "Mysterious figure trying to solve a case",
		Series:     "Death Note",
	},
	"Spike Spiegel": {
		Appearance: "Tall with fluffy dark hair",
		Ability:    "Expert in martial arts and gunfighting",
		Role:       "Bounty hunter with a mysterious past",
		Series:     "Cowboy Bebop",
	},
	"Saitama": {
		Appearance: "Bald head and simple expression",
		Ability:    "Can defeat enemies with a single punch",
		Role:       "Hero who feels unfulfilled despite strength",
		Series:     "One Punch Man",
	},
	"Tanjiro Kamado": {
		Appearance: "Has a scar on forehead and wears hanafuda earrings",
		Ability:    "Enhanced sense of smell and swordsmanship",
		Role:       "Kind-hearted demon slayer on a mission",
		Series:     "Demon Slayer",
	},
	"Nezuko Kamado": {
		Appearance: "Wears a bamboo muzzle and has pink eyes",
		Ability:    "Has unique abilities unlike others of her kind",
		Role:       "Protective sister who underwent a transformation",
		Series:     "Demon Slayer",
	},
	"Ash Ketchum": {
		Appearance: "Wears a cap and has a small yellow companion",
		Ability:    "Skilled trainer who forms bonds with creatures",
		Role:       "Dreams of becoming the very best",
		Series:     "Pokémon",
	},
	"Pikachu": {
		Appearance: "Yellow with red cheeks and a lightning-shaped tail",
		Ability:    "Can generate electricity from its body",
		Role:       "Loyal creature that refuses to evolve",
		Series:     "Pokémon",
	},
	"Ichigo Kurosaki": {
		Appearance: "Orange spiky hair and often carries a large sword",
		Ability:    "Can see and fight invisible beings",
		Role:       "High school student with special powers",
		Series:     "Bleach",
	},
	"Zoro Roronoa": {
		Appearance: "Green hair and carries three swords",
		Ability:    "Unique three-sword fighting style",
		Role:       "Swordsman with terrible sense of direction",
		Series:     "One Piece",
	},
	"Sanji Vinsmoke": {
		Appearance: "Blonde hair covering one eye and suit",
		Ability:    "Powerful kick-based fighting style",
		Role:       "Chef who refuses to use hands in battle",
		Series:     "One Piece",
	},
	"Nico Robin": {
		Appearance: "Dark hair and usually calm demeanor",
		Ability:    "Can sprout body parts on any surface",
		Role:       "Archaeologist searching for historical truth",
		Series:     "One Piece",
	},
	"Tobi": {
		Appearance: "Wears an orange spiral mask",
		Ability:    "Mysterious powers and unpredictable behavior",
		Role:       "Character with a complex hidden identity",
		Series:     "Naruto",
	},
	"Rin Nohara": {
		Appearance: "Has purple facial markings",
		Ability:    "Medical ninja with healing skills",
		Role:       "Important to multiple characters' backstories",
		Series:     "Naruto",
	},
	"Midoriya Izuku": {
		Appearance: "Green curly hair and freckles",
		Ability:    "Has inherited a powerful quirk",
		Role:       "Hero student working to master his abilities",
		Series:     "My Hero Academia",
	},
	"Bakugo Katsuki": {
		Appearance: "Spiky blonde hair and intense expression",
		Ability:    "Creates explosions from his hands",
		Role:       "Competitive rival with a fierce personality",
		Series:     "My Hero Academia",
	},
	"Todoroki Shoto": {
		Appearance: "Has half red and half white hair with a burn scar",
		Ability:    "Can control both ice and fire",
		Role:       "Powerful student with a troubled family history",
		Series:     "My Hero Academia",
	},
	"Zenitsu Agatsuma": {
		Appearance: "Blonde hair and often scared expression",
		Ability:    "Incredibly fast when utilizing thunder techniques",
		Role:       "Cowardly friend who shows great power in critical moments",
		Series:     "Demon Slayer",
	},
	"Inosuke Hashibira": {
		Appearance: "Wears a boar mask and has wild appearance",
		Ability:    "Incredibly flexible with unique sword style",
		Role:       "Wild and instinctual fighter with keen senses",
		Series:     "Demon Slayer",
	},
	"Roy Mustang": {
		Appearance: "Dark hair and usually wears military uniform",
		Ability:    "Can create and control fire with a snap",
		Role:       "Military officer with ambitious goals",
		Series:     "Fullmetal Alchemist",
	},
	"Winry Rockbell": {
		Appearance: "Blonde hair often with mechanical tools",
		Ability:    "Extremely skilled automail engineer",
		Role:       "Childhood friend and mechanical expert",
		Series:     "Fullmetal Alchemist",
	},
	"Hinata Hyuga": {
		Appearance: "Dark hair with distinctive pale eyes",
		Ability:    "Can see through objects with special eye technique",
		Role:       "Shy ninja with growing confidence",
		Series:     "Naruto",
	},
	"Rock Lee": {
		Appearance: "Bowl cut hair and thick eyebrows",
		Ability:    "Taijutsu master with incredible speed",
		Role:       "Hardworking ninja who can't use ninjutsu",
		Series:     "Naruto",
	},
	"Nami": {
		Appearance: "Orange hair and often carries a staff",
		Ability:    "Expert navigator and weather manipulator",
		Role:       "Navigator who creates weather-based attacks",
		Series:     "One Piece",
	},
	"Tony Tony Chopper": {
		Appearance: "Small reindeer with a blue nose and hat",
		Ability:    "Can transform into different forms",
		Role:       "Doctor with multiple transformation abilities",
		Series:     "One Piece",
	},
	"Franky": {
		Appearance: "Blue hair and robotic body parts",
		Ability:    "Cyborg with various built-in weapons",
		Role:       "Shipwright with a modified body",
		Series:     "One Piece",
	},
	"Brook": {
		Appearance: "Tall skeleton with an afro",
		Ability:    "Can separate soul from body and create ice effects",
		Role:       "Musician with a unique undead condition",
		Series:     "One Piece",
	},
	"Gohan": {
		Appearance: "Similar to the main hero but with different hair",
		Ability:    "Has enormous hidden potential",
		Role:       "Scholar with incredible hidden power",
		Series:     "Dragon Ball",
	},
	"Piccolo": {
		Appearance: "Green skin with antennae and cape",
		Ability:    "Can stretch limbs and regenerate body parts",
		Role:       "Former enemy turned mentor and ally",
		Series:     "Dragon Ball",
	},
	"Bulma": {
		Appearance: "Blue hair and stylish clothing",
		Ability:    "Genius inventor and scientist",
		Role:       "Brilliant scientist who creates advanced technology",
		Series:     "Dragon Ball",
	},
	"Ryuk": {
		Appearance: "Tall dark figure with unusual features",
		Ability:    "Can see lifespans and is invisible to most",
		Role:       "Observer with a taste for apples",
		Series:     "Death Note",
	},
}

// seriesRule maps name fragments to a series. Rules are checked in order
// against the folded character name; the first rule with a matching keyword
// wins.
type seriesRule struct {
	series   string
	keywords []string
}

var seriesRules = []seriesRule{
	{"Naruto", []string{"uzumaki", "uchiha", "hatake", "naruto", "hyuga", "hokage"}},
	{"One Piece", []string{"monkey", "luffy", "zoro", "sanji", "piece", "straw hat"}},
	{"Dragon Ball", []string{"goku", "vegeta", "gohan", "dragon", "saiyan", "ball"}},
	{"My Hero Academia", []string{"midoriya", "bakugo", "todoroki", "hero", "academia", "all might"}},
	{"Attack on Titan", []string{"eren", "mikasa", "levi", "yeager", "ackerman", "titan"}},
	{"Fullmetal Alchemist", []string{"elric", "alphonse", "edward", "fullmetal", "mustang", "alchemist"}},
	{"Demon Slayer", []string{"tanjiro", "nezuko", "zenitsu", "inosuke", "kamado", "demon", "slayer", "hashira"}},
	{"Death Note", []string{"light", "yagami", "lawliet", "ryuk", "death", "note"}},
	{"Hunter x Hunter", []string{"gon", "killua", "kurapika", "leorio", "hunter", "freecss", "zoldyck"}},
	{"Bleach", []string{"ichigo", "rukia", "aizen", "bleach", "kurosaki", "kuchiki", "shinigami"}},
	{"One Punch Man", []string{"saitama", "genos", "punch", "caped"}},
}

// seriesHints holds visual hints per series, vague enough to point at the
// show without naming the character.
var seriesHints = map[string][]string{
	"One Piece": {
		"Character has a distinctive scar",
		"Look for pirate-themed clothing or accessories",
		"This character is part of a famous pirate crew",
		"Character has an unusual physical ability",
		"Known for a unique fighting style",
		"This character is searching for a legendary treasure",
		"Character may have eaten a Devil Fruit",
		"This character has a bounty on their head",
	},
	"Naruto": {
		"Character wears a headband with a symbol",
		"Look for distinctive facial markings",
		"Character might be from a famous ninja clan",
		"Has a special eye technique",
		"Known for a signature jutsu (technique)",
		"Character is from a hidden village",
		"This character might have trained with a legendary ninja",
		"Look for symbols or marks representing their village",
	},
	"Dragon Ball": {
		"Character has an unusual hair style or color",
		"Watch for distinctive martial arts clothing",
		"Character may have superhuman strength",
		"Known for energy-based attacks",
		"May change appearance during power-ups",
		"This character might be from an alien race",
		"Character trains under extreme conditions",
		"Look for a distinctive aura color when powering up",
	},
	"Attack on Titan": {
		"Character wears military uniform with gear",
		"Has a serious or intense expression",
		"Character might have battle scars",
		"Associated with a specific military division",
		"Has survived traumatic events",
		"Character uses specialized equipment to move",
		"This character has fought giant humanoid enemies",
		"Look for regiment emblems on their uniform",
	},
	"Fullmetal Alchemist": {
		"Character may have automail (mechanical limbs)",
		"Look for alchemical symbols or circles",
		"Might have a distinctive clap before using powers",
		"Character may wear gloves with symbols",
		"Part of the military or opposing forces",
		"This character understands the principle of equivalent exchange",
		"Character may have a connection to the philosopher's stone",
		"Look for State Alchemist pocket watches or emblems",
	},
	"Pokémon": {
		"This is a brightly colored creature with special powers",
		"Character has distinctive clothing or hat",
		"May have a signature Pokémon partner",
		"Character is associated with a specific type of Pokémon",
		"Might have badges or special equipment",
		"This character participates in battles or contests",
		"Character might be a gym leader or trainer",
		"Look for devices used to capture or train creatures",
	},
	"Demon Slayer": {
		"Character wears distinctive patterned clothing",
		"Has a unique sword with special abilities",
		"Character might have unusual eye colors",
		"Known for a special breathing technique",
		"May have visible scars or markings",
		"This character fights supernatural enemies",
		"Character might have survived a family tragedy",
		"Look for distinctive sword colors or patterns",
	},
	"Death Note": {
		"Character has a meticulous or careful appearance",
		"May have an intense gaze or expression",
		"Character might have unusual sitting or standing posture",
		"Often seen thinking deeply or analyzing",
		"May carry or be associated with a notebook",
		"This character is involved in a battle of wits",
		"Character might hide their true intentions",
		"Look for signs of strategic thinking or planning",
	},
	"Hunter x Hunter": {
		"Character might use a specialized weapon",
		"Known for a unique ability called 'Nen'",
		"Character has distinctive eyes or expression",
		"May belong to a famous family or organization",
		"Has undergone special training",
		"This character participates in dangerous tests or missions",
		"Character might be searching for something valuable",
		"Look for distinctive cards or badges they might carry",
	},
	"My Hero Academia": {
		"Character might have a visible quirk (superpower)",
		"May wear a hero costume or uniform",
		"Character has a distinct appearance related to their powers",
		"Associated with a hero academy or villain group",
		"Known for a special super move",
		"This character attends a school for heroes",
		"Character might have a hero or villain name",
		"Look for distinctive costume designs reflecting their abilities",
	},
	"Bleach": {
		"Character might carry a distinctive sword",
		"May wear black robes or white uniforms",
		"Character has abilities related to spirits",
		"Could have distinctive hair color or style",
		"Might transform their weapon for special attacks",
		"This character deals with supernatural spirits",
		"Character might belong to a special organization",
		"Look for symbols representing their division or rank",
	},
	"Cowboy Bebop": {
		"Character has a stylish, noir-inspired appearance",
		"May carry weapons or tech from different eras",
		"Character might have a connection to space travel",
		"Often has a laid-back or cool demeanor",
		"Might have a distinctive ship or vehicle",
		"This character is involved in bounty hunting",
		"Character might have a jazz-inspired theme",
		"Look for retro-futuristic clothing or equipment",
	},
	"One Punch Man": {
		"Character might wear a hero costume",
		"May have an over-the-top appearance or powers",
		"Character could have a very simple or elaborate design",
		"Associated with a hero ranking system",
		"Might display extreme power or abilities",
		"This character exists in a world of heroes and monsters",
		"Character might belong to the Hero Association",
		"Look for their hero rank or classification",
	},
}

// genericAppearanceHints apply to any character without spoiling identity.
var genericAppearanceHints = []string{
	"Notice this character's distinctive hairstyle",
	"Look at the character's unique outfit or clothing",
	"This character has a recognizable facial feature",
	"Pay attention to any accessories or equipment",
	"This character has a memorable color scheme",
	"Notice any symbols or markings on their clothing",
	"This character's expression or pose is distinctive",
	"Look for any weapons or tools they might carry",
	"This character's body type or build is recognizable",
	"Pay attention to their eye color or design",
	"This character has unique clothing patterns",
	"Look for distinctive colors in their outfit",
	"Notice any special items they always carry",
	"This character has a unique silhouette",
	"Look for scars, markings, or other distinctive features",
	"This character has a unique color palette",
	"Notice any badges, emblems, or insignia they wear",
	"Look for unique jewelry or accessories",
	"This character has a distinctive stance or posture",
	"Pay attention to their footwear or gloves",
}

// genericAbilityHints describe powers and skills without naming anyone.
var genericAbilityHints = []string{
	"This character has a unique fighting style",
	"Known for having special powers or abilities",
	"This character has trained extensively in their skills",
	"Has abilities that make them stand out from others",
	"This character possesses skills that few others have",
	"Known for a signature move or technique",
	"This character might transform or change form",
	"Has mastered a specific type of combat",
	"This character uses unusual weapons or tools",
	"Known for their intelligence or strategy",
	"This character has overcome personal limitations",
	"Has abilities that surprise their opponents",
	"This character might control elements or energy",
	"Known for quick reflexes or speed",
	"This character has incredible strength or endurance",
}
