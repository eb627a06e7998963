package course

import "github.com/dataanalyse/financial-goals-planner/internal/models"

// Weeks returns the full eight-week course. Content is fixed; progress is
// tracked per user elsewhere.
func Weeks() []Week {
	return []Week{week1, week2, week3, week4, week5, week6, week7, week8}
}

var week1 = Week{
	Number:    1,
	Title:     "What is Money? 💰",
	Badge:     "Money Explorer",
	Objective: "Understand what money is, why we use it, and how it has changed over time.",
	Sections: []LessonSection{
		{
			Title: "Have you ever wondered...",
			Kind:  KindStory,
			Body: "Why do we use pieces of paper and metal to buy things? Money is something we use every day. " +
				"Today we travel through time to see how it evolved from simple trading to digital payments.",
		},
		{
			Title: "Before Money: The Barter System",
			Kind:  KindExample,
			Body: "Long ago people traded one thing directly for another: \"I'll give you 5 apples for that loaf of bread!\" " +
				"The catch: both people had to want what the other had. That made trading slow and hard.",
		},
		{
			Title: "The First \"Money\"",
			Kind:  KindStory,
			Body: "Shells, salt, and around 600 BC the first metal coins. Anything people agreed had value could be money, " +
				"as long as it was easy to carry, hard to fake, and didn't spoil.",
		},
		{
			Title: "Money Today",
			Kind:  KindTip,
			Body: "Paper bills, cards and phone payments all do the same job: they let you buy what you need, save for goals, " +
				"trade fairly and compare the value of different things.",
		},
	},
	Activity: Activity{
		Kind:  ActivityOrdering,
		Title: "🎮 Money Through the Ages",
		Intro: "Place the forms of money in the order they appeared in history.",
		Order: []string{
			"🤝 Bartering",
			"🪙 Coins",
			"💵 Paper Money",
			"📄 Checks",
			"💳 Credit Cards",
			"📱 Digital Payments",
		},
	},
	Questions: []models.QuizQuestion{
		{
			Question:    "What is bartering?",
			Options:     []string{"Using coins to pay for things", "Trading one thing for another without money", "Saving money in a bank"},
			Correct:     1,
			Explanation: "Bartering is trading goods or services directly without using money!",
			Hint:        "Think about how people traded before money was invented.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "Which of these was NOT used as money in history?",
			Options:     []string{"Shells", "Rocks", "Televisions"},
			Correct:     2,
			Explanation: "TVs are too modern! Ancient people used shells, rocks, and many other things as money.",
			Hint:        "Think about what existed thousands of years ago.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "What do we call money you can't see that moves electronically?",
			Options:     []string{"Metal coins", "Digital money", "Paper bills"},
			Correct:     1,
			Explanation: "Digital money exists only in computers and moves electronically between accounts!",
			Hint:        "When you pay with your phone, what kind of money is that?",
			Difficulty:  models.DifficultyMedium,
		},
		{
			Question:    "Why did people invent money?",
			Options:     []string{"To make trading easier", "Because they liked shiny coins", "To play games"},
			Correct:     0,
			Explanation: "Money solved the problems of bartering and made trading much simpler for everyone!",
			Hint:        "Think about the problems with bartering we learned about.",
			Difficulty:  models.DifficultyEasy,
		},
	},
}

var week2 = Week{
	Number:    2,
	Title:     "How People Earn Money 💼",
	Badge:     "Income Detective",
	Objective: "Learn the different ways people earn money and which skills make earning possible.",
	Sections: []LessonSection{
		{
			Title: "How Do People Get Money?",
			Kind:  KindStory,
			Body: "Money doesn't grow on trees — people earn it by doing work that others value. " +
				"Jobs, businesses, selling things you make: every dollar starts with someone providing something useful.",
		},
		{
			Title: "Jobs People Do",
			Kind:  KindExample,
			Body: "Doctors help sick people, teachers help students learn, builders put up houses. " +
				"Different jobs need different skills, and jobs that need more training usually pay more.",
		},
		{
			Title: "Running a Business",
			Kind:  KindStory,
			Body: "An entrepreneur starts their own business instead of working for someone else. " +
				"More risk, but the chance to build something of your own.",
		},
		{
			Title: "Can Kids Earn Money Too?",
			Kind:  KindTip,
			Body: "Absolutely: dog walking, lawn mowing, selling crafts, tutoring younger kids. " +
				"Your skills — drawing, coding, explaining things — are the seeds of future income.",
		},
	},
	Activity: Activity{
		Kind:  ActivityMatching,
		Title: "🎯 Job Matching Game",
		Intro: "Match each job with what it does.",
		Pairs: []Pair{
			{Key: "🧑‍⚕️ Doctor", Value: "Helps sick people get better"},
			{Key: "👩‍🏫 Teacher", Value: "Helps students learn new things"},
			{Key: "🧑‍🍳 Chef", Value: "Cooks delicious food for people"},
			{Key: "👷 Builder", Value: "Builds houses and buildings"},
			{Key: "🎨 Artist", Value: "Creates beautiful paintings and art"},
			{Key: "🧑‍💻 Programmer", Value: "Writes code for websites and apps"},
		},
	},
	Questions: []models.QuizQuestion{
		{
			Question:    "What is a job?",
			Options:     []string{"A kind of money", "Work you do for someone to earn money", "A skill you learn in school"},
			Correct:     1,
			Explanation: "A job is work you do for someone else (like a company) in exchange for money!",
			Hint:        "Think about what your parents do to earn money.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "Who is an entrepreneur?",
			Options:     []string{"Someone who fixes cars", "Someone who works for a company", "Someone who starts their own business"},
			Correct:     2,
			Explanation: "An entrepreneur is someone who starts their own business and takes risks to make money!",
			Hint:        "Think about someone who opens their own pizza shop.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "Which of these is a skill that could help you earn money?",
			Options:     []string{"Bicycle", "Drawing", "Money"},
			Correct:     1,
			Explanation: "Drawing is a skill! You could use it to design posters, make art, or create things people want to buy.",
			Hint:        "Which one is something you can DO or be good at?",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "Why do some jobs pay more money than others?",
			Options:     []string{"Because some people are luckier", "Because some jobs need more training and skills", "Because some jobs are more fun"},
			Correct:     1,
			Explanation: "Jobs that require more education, training, or special skills usually pay more money!",
			Hint:        "Think about why a doctor might earn more than someone who works at a store.",
			Difficulty:  models.DifficultyMedium,
		},
	},
}

var week3 = Week{
	Number:    3,
	Title:     "Needs vs Wants 🎯",
	Badge:     "Smart Shopper",
	Objective: "Tell needs from wants and make smart choices when money is limited.",
	Sections: []LessonSection{
		{
			Title: "Desert Island Challenge! 🏝️",
			Kind:  KindStory,
			Body: "Stranded on an island, what do you grab first: fresh water or a game console? " +
				"When resources are limited, knowing what you truly need comes first.",
		},
		{
			Title: "What Are Needs? 🎯",
			Kind:  KindText,
			Body:  "Needs are essentials for survival and health: food, water, shelter, basic clothing, medicine.",
		},
		{
			Title: "What Are Wants? ✨",
			Kind:  KindText,
			Body: "Wants make life more fun but you can live without them: games, designer shoes, snacks, streaming. " +
				"Nothing wrong with wants — they just come after needs.",
		},
		{
			Title: "Making Smart Money Choices 🧠",
			Kind:  KindTip,
			Body: "The same item can be either! A bicycle is a need if it's your only way to school, a want if it's just for fun. " +
				"Before buying, ask: do I need this, or do I want it?",
		},
	},
	Activity: Activity{
		Kind:  ActivityMatching,
		Title: "🎮 Needs vs Wants Sort",
		Intro: "Sort each item into the right bucket.",
		Pairs: []Pair{
			{Key: "🥤 Drinking water", Value: "Need"},
			{Key: "🏠 A place to live", Value: "Need"},
			{Key: "🧥 Warm winter coat", Value: "Need"},
			{Key: "🎮 New video game", Value: "Want"},
			{Key: "👟 Designer sneakers", Value: "Want"},
			{Key: "🍭 Candy and snacks", Value: "Want"},
		},
	},
	Questions: []models.QuizQuestion{
		{
			Question:    "True or False: A smartphone is always a need.",
			Options:     []string{"True - everyone needs a phone", "False - it depends on your situation", "True - you can't live without one"},
			Correct:     1,
			Explanation: "A smartphone could be a need (for work or emergencies) or a want (for games and social media). It depends on your specific situation!",
			Hint:        "Think about whether you could survive and be healthy without one.",
			Difficulty:  models.DifficultyMedium,
		},
		{
			Question:    "If you have $10 and need lunch, what's the smart choice?",
			Options:     []string{"Buy expensive snacks you love", "Buy a healthy, filling meal", "Save the money for later"},
			Correct:     1,
			Explanation: "When you need something essential like food, it's smart to prioritize a healthy, filling meal over wants!",
			Hint:        "Remember, you NEED lunch - what choice satisfies that need best?",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "What's the main difference between needs and wants?",
			Options:     []string{"Needs are expensive, wants are cheap", "Needs are for survival, wants are for enjoyment", "Needs are boring, wants are fun"},
			Correct:     1,
			Explanation: "Needs are essential for survival and health, while wants make life more enjoyable but aren't necessary to live!",
			Hint:        "Think about what happens if you don't have each one.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "Which of these could be EITHER a need or a want?",
			Options:     []string{"A bicycle", "Drinking water", "Video games"},
			Correct:     0,
			Explanation: "A bicycle could be a need (if it's your only transportation to school/work) or a want (if you just use it for fun)!",
			Hint:        "Think about different situations where the same item serves different purposes.",
			Difficulty:  models.DifficultyMedium,
		},
	},
}

var week4 = Week{
	Number:    4,
	Title:     "Making a Budget 📊",
	Badge:     "Budget Boss",
	Objective: "Build a simple budget and learn the 50/30/20 rule.",
	Sections: []LessonSection{
		{
			Title: "Too Many Plans, Not Enough Cash! 💸",
			Kind:  KindStory,
			Body: "Concert tickets, new headphones, a school trip — and $40 of allowance. " +
				"Without a plan, money disappears and the things you actually care about go unfunded.",
		},
		{
			Title: "What Is a Budget? 📊",
			Kind:  KindText,
			Body: "A budget is simply a plan for how you spend and save your money. " +
				"Income in, expenses out, and every dollar gets a job before you spend it.",
		},
		{
			Title: "Income vs Expenses: The Money Balance ⚖️",
			Kind:  KindExample,
			Body: "Fixed expenses stay the same every month (bus pass, school lunch). Variable expenses change (snacks, fun). " +
				"If expenses are bigger than income, the plan has to change — not the math.",
		},
		{
			Title: "The 50/30/20 Rule: Budget Like a Pro! 📏",
			Kind:  KindTip,
			Body:  "A classic starting split: 50% for needs, 30% for wants, 20% for savings and emergencies.",
		},
	},
	Activity: Activity{
		Kind:  ActivityMatching,
		Title: "🎮 Budget Buckets",
		Intro: "Using the 50/30/20 rule, drop each item into its budget bucket.",
		Pairs: []Pair{
			{Key: "🚌 Bus pass to school", Value: "Needs (50%)"},
			{Key: "🥪 School lunch", Value: "Needs (50%)"},
			{Key: "🎬 Movie night", Value: "Wants (30%)"},
			{Key: "🎧 New headphones", Value: "Wants (30%)"},
			{Key: "🏦 Emergency fund", Value: "Savings (20%)"},
			{Key: "🎯 Saving for a bike", Value: "Savings (20%)"},
		},
	},
	Questions: []models.QuizQuestion{
		{
			Question:    "What is a budget?",
			Options:     []string{"A plan for how you spend and save your money", "A list of things you want to buy", "Money you get from your parents"},
			Correct:     0,
			Explanation: "A budget is a plan that helps you decide how to use your money wisely - for spending, saving, and emergencies!",
			Hint:        "Think about what helps you organize and plan your money.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "What is a fixed expense?",
			Options:     []string{"Money you spend on fun things", "Money you must pay regularly, like lunch or bus fare", "Money you save for later"},
			Correct:     1,
			Explanation: "Fixed expenses are things you MUST pay regularly - like school lunch, bus passes, or textbooks. They don't change much from month to month.",
			Hint:        "Think about expenses that are the same every month and you can't avoid.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "In the 50/30/20 rule, what does the 20% represent?",
			Options:     []string{"Money for wants and fun", "Money for needs and essentials", "Money for savings and emergencies"},
			Correct:     2,
			Explanation: "The 20% in the 50/30/20 rule is for savings and emergency funds! This helps you prepare for the future and unexpected expenses.",
			Hint:        "This is the money you don't spend right away but keep for later.",
			Difficulty:  models.DifficultyMedium,
		},
		{
			Question:    "Why is it important to have an emergency fund?",
			Options:     []string{"To buy more video games", "To handle unexpected expenses like a broken phone", "To impress your friends"},
			Correct:     1,
			Explanation: "An emergency fund helps you when unexpected things happen - like your bike breaking or needing school supplies you forgot. It keeps you prepared!",
			Hint:        "Think about what happens when something unexpected breaks or you need money urgently.",
			Difficulty:  models.DifficultyMedium,
		},
	},
}

var week5 = Week{
	Number:    5,
	Title:     "The Magic of Saving 🪄",
	Badge:     "Savings Hero",
	Objective: "Build the saving habit and see how small, consistent amounts grow.",
	Sections: []LessonSection{
		{
			Title: "Where Did My Money Go? 😱",
			Kind:  KindStory,
			Body: "$5 here, $3 there — by Friday the allowance is gone and nobody knows where. " +
				"Saving starts with paying yourself first, before the money evaporates.",
		},
		{
			Title: "What Is Saving? 🏦",
			Kind:  KindText,
			Body: "Saving is keeping part of your money for later instead of spending it all now: " +
				"for emergencies, for goals, and for the freedom to choose.",
		},
		{
			Title: "Maya and the Magic Jar ✨",
			Kind:  KindStory,
			Body: "Maya saved $5 every single week. Her friend saved $20 \"whenever he felt like it\" — which was almost never. " +
				"After a year Maya had $260 and the habit that built it.",
		},
		{
			Title: "The Compound Interest Snowball Effect 🏔️",
			Kind:  KindTip,
			Body: "In a savings account your money earns interest, and then the interest earns interest. " +
				"Like a snowball rolling downhill, growth speeds up the longer you leave it alone.",
		},
	},
	Activity: Activity{
		Kind:  ActivityOrdering,
		Title: "🎮 Build the Savings Snowball",
		Intro: "Put the steps of a winning savings habit in order.",
		Order: []string{
			"🎯 Pick a savings goal",
			"💵 Pay yourself first",
			"🏦 Put it in the bank",
			"💰 Earn interest",
			"🏔️ Let compounding snowball",
		},
	},
	Questions: []models.QuizQuestion{
		{
			Question:    "What is one reason people save money?",
			Options:     []string{"To make their parents happy", "To prepare for emergencies and future goals", "Because banks force them to"},
			Correct:     1,
			Explanation: "People save money to be prepared for emergencies, achieve their dreams, and have financial security!",
			Hint:        "Think about why having money set aside would be helpful.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "What does interest mean?",
			Options:     []string{"Money the bank pays you for saving with them", "Money you pay the bank to keep your money safe", "The cost of buying something expensive"},
			Correct:     0,
			Explanation: "Interest is like a reward! The bank pays you a small amount for keeping your money with them because they can use it to help other people.",
			Hint:        "Think about what the bank gives you as a thank-you for saving.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "What makes compound interest magical?",
			Options:     []string{"You earn interest only on your original money", "You earn interest on your money AND on previous interest earned", "It makes your money disappear"},
			Correct:     1,
			Explanation: "Compound interest is magical because you earn interest on your original money PLUS interest on the interest you've already earned! It grows like a snowball!",
			Hint:        "Think about earning rewards on your rewards.",
			Difficulty:  models.DifficultyMedium,
		},
		{
			Question:    "What's a smarter financial move?",
			Options:     []string{"Spend $20 on impulse purchases every week", "Save $5 every week consistently", "Only save money when you feel like it"},
			Correct:     1,
			Explanation: "Consistent saving, even small amounts like $5/week, builds powerful habits and grows your money over time through compound interest!",
			Hint:        "Think about which choice helps your money grow over time.",
			Difficulty:  models.DifficultyMedium,
		},
	},
}

var week6 = Week{
	Number:    6,
	Title:     "Understanding Interest 🌱",
	Badge:     "Growth Guru",
	Objective: "Know what interest is and how compound interest beats simple interest over time.",
	Sections: []LessonSection{
		{
			Title: "Would You Lend Me $100? 🤔",
			Kind:  KindStory,
			Body: "If a friend borrows $100 for a year, giving back exactly $100 means you lost a year of using your money. " +
				"Interest is the price of borrowing — and the reward for lending.",
		},
		{
			Title: "What Is Interest? 💰",
			Kind:  KindText,
			Body: "Interest is extra money: you earn it when you save (the bank pays you) and you pay it when you borrow. " +
				"It's always a percentage of the amount, called the rate.",
		},
		{
			Title: "Simple vs Compound Interest: The Showdown! 🥊",
			Kind:  KindExample,
			Body: "Simple interest pays only on the original amount: $100 at 10% earns $10 every year. " +
				"Compound interest pays on the original AND on past interest: year two pays on $110, year three on $121...",
		},
		{
			Title: "How Do Banks Really Work? 🏦",
			Kind:  KindTip,
			Body: "Banks pay savers interest, lend that money to borrowers at a higher rate, and keep the difference. " +
				"Your savings account is you being the lender.",
		},
	},
	Activity: Activity{
		Kind:  ActivityMatching,
		Title: "🎮 Interest Vocabulary Match",
		Intro: "Match each interest term with its meaning.",
		Pairs: []Pair{
			{Key: "Principal", Value: "The original amount saved or borrowed"},
			{Key: "Interest rate", Value: "The percentage paid per period"},
			{Key: "Simple interest", Value: "Interest paid only on the original amount"},
			{Key: "Compound interest", Value: "Interest paid on the amount plus past interest"},
		},
	},
	Questions: []models.QuizQuestion{
		{
			Question:    "What is interest?",
			Options:     []string{"Free money from the government", "Extra money earned when saving or paid when borrowing", "A type of tax on your income"},
			Correct:     1,
			Explanation: "Interest is extra money! You earn it when you save (the bank pays you) and you pay it when you borrow (you pay the bank).",
			Hint:        "Think about what happens when you put money in a bank or borrow from someone.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "If you borrow $100 at 10% interest, how much do you owe?",
			Options:     []string{"$100", "$110", "$90"},
			Correct:     1,
			Explanation: "You owe the original $100 PLUS 10% interest ($10), which equals $110 total!",
			Hint:        "You pay back the original amount plus the interest charge.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "What's the key difference between simple and compound interest?",
			Options:     []string{"Simple interest is easier to calculate", "Compound interest earns interest on previous interest earned", "Simple interest pays more money"},
			Correct:     1,
			Explanation: "Compound interest is magic! You earn interest on your original money AND on the interest you've already earned. It grows faster!",
			Hint:        "Think about earning rewards on your rewards.",
			Difficulty:  models.DifficultyMedium,
		},
		{
			Question:    "Which earns more money over 5 years?",
			Options:     []string{"Simple interest at 10%", "Compound interest at 10%", "They earn exactly the same"},
			Correct:     1,
			Explanation: "Compound interest always earns more over time because your interest starts earning interest too! It's like a money snowball!",
			Hint:        "Which one lets your interest earn more interest?",
			Difficulty:  models.DifficultyMedium,
		},
	},
}

var week7 = Week{
	Number:    7,
	Title:     "Credit and Debt Basics 🛡️",
	Badge:     "Credit Guardian",
	Objective: "Understand borrowing, the real cost of credit, and what a credit score is.",
	Sections: []LessonSection{
		{
			Title: "The $400 Gaming Console Dilemma 🎮",
			Kind:  KindStory,
			Body: "Buy it now on credit, or save for four months? Credit means getting it today and paying more later. " +
				"Sometimes worth it, often not — the interest is the hidden price tag.",
		},
		{
			Title: "What Are Credit and Debt? 💳",
			Kind:  KindText,
			Body: "Credit is borrowed money you promise to repay. Debt is what you owe once you've borrowed. " +
				"Good debt builds your future (education); bad debt just makes yesterday's fun more expensive.",
		},
		{
			Title: "How Do Credit Cards Work? 🔄",
			Kind:  KindExample,
			Body: "Pay the full balance on time and credit is free. Pay late or only the minimum and interest piles on fast, " +
				"plus fees, plus damage to your credit score.",
		},
		{
			Title: "Your Credit Score: A Money Report Card 📊",
			Kind:  KindTip,
			Body: "A credit score (300-850) tells lenders how reliably you repay. Higher score, cheaper borrowing. " +
				"On-time payments are the single biggest ingredient.",
		},
	},
	Activity: Activity{
		Kind:  ActivityMatching,
		Title: "🎮 Credit Terms Match",
		Intro: "Match each credit term with what it really means.",
		Pairs: []Pair{
			{Key: "Credit limit", Value: "The most you are allowed to borrow"},
			{Key: "Minimum payment", Value: "The smallest amount due each month"},
			{Key: "APR", Value: "The yearly cost of borrowing as a percentage"},
			{Key: "Credit score", Value: "A grade showing how reliably you repay"},
			{Key: "Late fee", Value: "The charge for missing a payment date"},
		},
	},
	Questions: []models.QuizQuestion{
		{
			Question:    "What is debt?",
			Options:     []string{"Free money from the government", "Money you owe to someone else", "Money you found on the street"},
			Correct:     1,
			Explanation: "Debt is money you owe! When you borrow money or use credit, you create debt that must be paid back, usually with interest.",
			Hint:        "Think about what happens after you borrow money.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "Which of these is considered 'good debt'?",
			Options:     []string{"Buying expensive shoes on a credit card", "Taking a student loan for education", "Borrowing money to buy video games"},
			Correct:     1,
			Explanation: "Student loans are 'good debt' because education helps build your future earning potential! Good debt helps you grow.",
			Hint:        "Think about which debt helps build your future.",
			Difficulty:  models.DifficultyMedium,
		},
		{
			Question:    "What happens if you don't pay your credit card bill on time?",
			Options:     []string{"Nothing happens", "You get charged interest and fees", "You get extra money"},
			Correct:     1,
			Explanation: "Late payments result in interest charges, late fees, and damage to your credit score. It's expensive to be late!",
			Hint:        "Credit card companies charge you for being late.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "What is a credit score?",
			Options:     []string{"How much money you have in the bank", "A grade that shows how responsible you are with credit", "The number of credit cards you own"},
			Correct:     1,
			Explanation: "A credit score is like a grade (300-850) that shows lenders how responsible you are with borrowed money. Higher scores = better rates!",
			Hint:        "Think of it like a report card for your money behavior.",
			Difficulty:  models.DifficultyMedium,
		},
	},
}

var week8 = Week{
	Number:    8,
	Title:     "Investment Fundamentals 🚀",
	Badge:     "Future Investor",
	Objective: "See how investing grows wealth, why risk and reward travel together, and why starting early wins.",
	Sections: []LessonSection{
		{
			Title: "The $100 Birthday Money Challenge 🎂",
			Kind:  KindStory,
			Body: "Spend the birthday $100 today, or invest it and let it work for decades? " +
				"At a 10% average return it doubles roughly every 7 years — time does the heavy lifting.",
		},
		{
			Title: "What Is Investing Really? 🧠",
			Kind:  KindText,
			Body: "Investing is buying things that can grow in value or pay you — stocks, bonds, funds. " +
				"Saving keeps money safe; investing gives it a chance to multiply.",
		},
		{
			Title: "The Risk & Reward Adventure! 🎢",
			Kind:  KindExample,
			Body: "Savings accounts barely move. Bonds wobble a little. Stocks swing hard but have grown the most over long periods. " +
				"Higher potential reward always rides with higher risk.",
		},
		{
			Title: "Don't Put All Your Eggs in One Basket 🧺",
			Kind:  KindTip,
			Body: "Diversification spreads your money across many investments, so one loser can't sink you. " +
				"A boring mix, held for a long time, beats exciting bets.",
		},
	},
	Activity: Activity{
		Kind:  ActivityMatching,
		Title: "🎮 Risk & Reward Ladder",
		Intro: "Match each investment with its risk and reward profile.",
		Pairs: []Pair{
			{Key: "🏦 Savings account", Value: "Very low risk, very low reward"},
			{Key: "🏛️ Government bonds", Value: "Low risk, steady reward"},
			{Key: "📊 Index funds", Value: "Medium risk, solid long-term reward"},
			{Key: "📈 Single company stock", Value: "High risk, high potential reward"},
		},
	},
	Questions: []models.QuizQuestion{
		{
			Question:    "What is the main goal of investing?",
			Options:     []string{"Keep money completely safe", "Grow money over time to build wealth", "Spend money on things you want"},
			Correct:     1,
			Explanation: "Investing is about growing your money over time! While saving keeps money safe, investing gives it the chance to multiply and build real wealth.",
			Hint:        "Think about what you want your money to do in the future.",
			Difficulty:  models.DifficultyEasy,
		},
		{
			Question:    "Which investment typically has the highest risk but also highest potential reward?",
			Options:     []string{"Government bonds", "Individual company stocks", "Savings accounts"},
			Correct:     1,
			Explanation: "Individual stocks can be very risky because one company's fortunes can change quickly, but they also offer the highest growth potential!",
			Hint:        "Think about which investment can change the most dramatically.",
			Difficulty:  models.DifficultyMedium,
		},
		{
			Question:    "Why is starting to invest early so powerful?",
			Options:     []string{"You have more money when you're young", "Compound interest has more time to work", "Investments are cheaper when you're young"},
			Correct:     1,
			Explanation: "Time is your superpower! Compound interest means your money earns money, and then that money earns money too. The longer this happens, the more dramatic the growth!",
			Hint:        "Think about how compound interest works over many years.",
			Difficulty:  models.DifficultyMedium,
		},
		{
			Question:    "What does 'diversification' mean in investing?",
			Options:     []string{"Putting all your money in one great investment", "Spreading your money across different types of investments", "Only investing in companies you personally like"},
			Correct:     1,
			Explanation: "Don't put all your eggs in one basket! Diversification spreads risk so if one investment does poorly, others might do well.",
			Hint:        "Think about the phrase 'don't put all your eggs in one basket.'",
			Difficulty:  models.DifficultyMedium,
		},
	},
}
