package feed

import (
	"time"

	"github.com/threadchain/threadchain/internal/models"
)

// Fixed, deterministic dataset used when no live data source is
// available (offline/demo operation). Seed and remote records are
// never mixed within one session.

func ts(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// SeedUsers returns a fresh copy of the seed user set.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:             "1",
			WalletAddress:  "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
			Username:       "crypto_enthusiast",
			DisplayName:    "Crypto Enthusiast",
			Bio:            "Building the future on Solana",
			Avatar:         "https://api.dicebear.com/7.x/avataaars/svg?seed=crypto_enthusiast",
			FollowerCount:  1234,
			FollowingCount: 567,
			IsVerified:     true,
			CreatedAt:      ts("2024-01-15T10:00:00Z"),
		},
		{
			ID:             "2",
			WalletAddress:  "8yLXtg3DX98e08UKTEqcE6kCkhfTrB94UASpbJqtgBtV",
			Username:       "defi_degen",
			DisplayName:    "DeFi Degen",
			Bio:            "Yield farming across the Solana ecosystem",
			Avatar:         "https://api.dicebear.com/7.x/avataaars/svg?seed=defi_degen",
			FollowerCount:  2890,
			FollowingCount: 145,
			IsVerified:     true,
			CreatedAt:      ts("2024-02-20T08:30:00Z"),
		},
		{
			ID:             "3",
			WalletAddress:  "9zMYuh4EY09f19VLTFrD7lDkifUsC95VBTqufKstgCtW",
			Username:       "nft_collector",
			DisplayName:    "NFT Collector",
			Bio:            "Collecting digital art on Solana",
			Avatar:         "https://api.dicebear.com/7.x/avataaars/svg?seed=nft_collector",
			FollowerCount:  456,
			FollowingCount: 890,
			IsVerified:     false,
			CreatedAt:      ts("2024-03-10T12:15:00Z"),
		},
		{
			ID:             "4",
			WalletAddress:  "5nKLth5FX20g30WMUGrE8mCkjfVsD96VCSpbKqugDuX",
			Username:       "solana_dev",
			DisplayName:    "Solana Developer",
			Bio:            "Core contributor to Solana ecosystem",
			Avatar:         "https://api.dicebear.com/7.x/avataaars/svg?seed=solana_dev",
			FollowerCount:  5670,
			FollowingCount: 234,
			IsVerified:     true,
			CreatedAt:      ts("2023-12-05T16:45:00Z"),
		},
		{
			ID:             "5",
			WalletAddress:  "6oMLui6GY21h41XNVHsF9nDljgWtE97WDTrfLquiEuY",
			Username:       "web3_builder",
			DisplayName:    "Web3 Builder",
			Bio:            "Building decentralized applications",
			Avatar:         "https://api.dicebear.com/7.x/avataaars/svg?seed=web3_builder",
			FollowerCount:  1890,
			FollowingCount: 567,
			IsVerified:     false,
			CreatedAt:      ts("2024-01-28T11:20:00Z"),
		},
		{
			ID:             "6",
			WalletAddress:  "7pNMvj7HZ32i52YOWItG0oEkmxXuF98XETsgMrviEvZ",
			Username:       "dao_governor",
			DisplayName:    "DAO Governor",
			Bio:            "Governance and community building enthusiast",
			Avatar:         "https://api.dicebear.com/7.x/avataaars/svg?seed=dao_governor",
			FollowerCount:  3456,
			FollowingCount: 789,
			IsVerified:     true,
			CreatedAt:      ts("2023-11-18T09:30:00Z"),
		},
	}
}

// SeedPosts returns a fresh copy of the seed post collection, newest
// first, matching the ordering contract of the remote store.
func SeedPosts() []models.Post {
	users := SeedUsers()
	return []models.Post{
		{
			ID:           "1",
			Author:       users[0],
			Content:      "Just built my first Solana dApp! The ecosystem is incredible. The transaction speeds are mind-blowing compared to other chains. #Solana #Web3 #Building #dApp",
			MediaURL:     "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=600",
			MediaType:    models.MediaTypeImage,
			Tags:         []string{"solana", "web3", "building", "dapp"},
			Upvotes:      142,
			Downvotes:    8,
			CommentCount: 23,
			TipAmount:    4.5,
			CreatedAt:    ts("2024-01-20T14:30:00Z"),
		},
		{
			ID:            "2",
			Author:        users[1],
			Content:       "The new Jupiter aggregator update is insane! Best DEX experience on any chain tbh. Slippage is almost non-existent now. #Jupiter #DeFi #Solana #Trading",
			Tags:          []string{"jupiter", "defi", "solana", "trading"},
			Upvotes:       289,
			Downvotes:     12,
			CommentCount:  67,
			TipAmount:     18.3,
			CreatedAt:     ts("2024-01-20T12:15:00Z"),
			UserVote:      models.VoteUp,
			HasUserTipped: true,
		},
		{
			ID:           "3",
			Author:       users[2],
			Content:      "Found this amazing AI-generated art collection on Magic Eden. The future of creativity is here! Each piece tells a unique story through blockchain technology.",
			MediaURL:     "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=600",
			MediaType:    models.MediaTypeImage,
			Tags:         []string{"nft", "art", "ai", "magiceden"},
			Upvotes:      178,
			Downvotes:    5,
			CommentCount: 34,
			TipAmount:    7.2,
			CreatedAt:    ts("2024-01-20T10:45:00Z"),
		},
		{
			ID:           "4",
			Author:       users[3],
			Content:      "Working on a new consensus mechanism that could revolutionize blockchain scalability. Early tests show 100x improvement! #Blockchain #Innovation #Scaling",
			MediaURL:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=600",
			MediaType:    models.MediaTypeImage,
			Tags:         []string{"blockchain", "innovation", "scaling", "consensus"},
			Upvotes:      456,
			Downvotes:    23,
			CommentCount: 89,
			TipAmount:    25.7,
			CreatedAt:    ts("2024-01-20T09:20:00Z"),
			UserVote:     models.VoteUp,
		},
		{
			ID:            "5",
			Author:        users[4],
			Content:       "Just deployed my first smart contract using Anchor! The developer experience on Solana is unmatched. Time to build the next big thing! #Anchor #SmartContracts #Development",
			Tags:          []string{"anchor", "smartcontracts", "development", "solana"},
			Upvotes:       234,
			Downvotes:     7,
			CommentCount:  45,
			TipAmount:     9.8,
			CreatedAt:     ts("2024-01-20T08:10:00Z"),
			HasUserTipped: true,
		},
		{
			ID:           "6",
			Author:       users[5],
			Content:      "Our DAO just reached 10,000 members! Community governance is the future of organizations. Power to the people! #DAO #Governance #Community #Decentralization",
			MediaURL:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=600",
			MediaType:    models.MediaTypeImage,
			Tags:         []string{"dao", "governance", "community", "decentralization"},
			Upvotes:      567,
			Downvotes:    18,
			CommentCount: 156,
			TipAmount:    32.4,
			CreatedAt:    ts("2024-01-20T07:30:00Z"),
		},
		{
			ID:           "7",
			Author:       users[0],
			Content:      "Staking rewards on Solana are looking juicy! APY is through the roof and the network keeps getting stronger. Time to compound those gains! #Staking #Yields #Solana",
			Tags:         []string{"staking", "yields", "solana", "rewards"},
			Upvotes:      189,
			Downvotes:    11,
			CommentCount: 28,
			TipAmount:    6.1,
			CreatedAt:    ts("2024-01-19T22:45:00Z"),
			UserVote:     models.VoteUp,
		},
		{
			ID:            "8",
			Author:        users[1],
			Content:       "Cross-chain bridges are finally getting secure! New tech is solving the trilemma of speed, security, and decentralization. #CrossChain #Bridges #Interoperability",
			MediaURL:      "https://images.unsplash.com/photo-1518186285589-2f7649de83e0?w=600",
			MediaType:     models.MediaTypeImage,
			Tags:          []string{"crosschain", "bridges", "interoperability", "security"},
			Upvotes:       345,
			Downvotes:     15,
			CommentCount:  72,
			TipAmount:     14.9,
			CreatedAt:     ts("2024-01-19T20:15:00Z"),
			HasUserTipped: true,
		},
		{
			ID:           "9",
			Author:       users[2],
			Content:      "Metaverse NFTs are evolving beyond just profile pictures. Interactive experiences and utility are the new standard! #Metaverse #NFTs #Gaming #VirtualWorlds",
			Tags:         []string{"metaverse", "nfts", "gaming", "virtualworlds"},
			Upvotes:      223,
			Downvotes:    9,
			CommentCount: 41,
			TipAmount:    8.7,
			CreatedAt:    ts("2024-01-19T18:30:00Z"),
		},
		{
			ID:           "10",
			Author:       users[3],
			Content:      "Validator node setup complete! Contributing to network security while earning rewards. Decentralization at its finest! #Validator #Network #Security #Decentralization",
			MediaURL:     "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=600",
			MediaType:    models.MediaTypeImage,
			Tags:         []string{"validator", "network", "security", "decentralization"},
			Upvotes:      378,
			Downvotes:    12,
			CommentCount: 56,
			TipAmount:    19.3,
			CreatedAt:    ts("2024-01-19T16:45:00Z"),
			UserVote:     models.VoteUp,
		},
		{
			ID:           "11",
			Author:       users[4],
			Content:      "Web3 social media is changing how we interact online. True ownership of content and censorship resistance! #Web3Social #Decentralized #ContentOwnership",
			Tags:         []string{"web3social", "decentralized", "contentownership", "censorship"},
			Upvotes:      156,
			Downvotes:    6,
			CommentCount: 32,
			TipAmount:    5.4,
			CreatedAt:    ts("2024-01-19T14:20:00Z"),
		},
		{
			ID:            "12",
			Author:        users[5],
			Content:       "Token economics are fascinating! Studying how different mechanisms affect adoption and sustainability. Math behind money! #Tokenomics #Economics #CryptoResearch",
			MediaURL:      "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=600",
			MediaType:     models.MediaTypeImage,
			Tags:          []string{"tokenomics", "economics", "cryptoresearch", "sustainability"},
			Upvotes:       267,
			Downvotes:     14,
			CommentCount:  48,
			TipAmount:     11.6,
			CreatedAt:     ts("2024-01-19T12:10:00Z"),
			HasUserTipped: true,
		},
		{
			ID:           "13",
			Author:       users[0],
			Content:      "Privacy coins are making a comeback! Zero-knowledge proofs are revolutionizing how we think about financial privacy. #Privacy #ZKProofs #Cryptocurrency #Innovation",
			Tags:         []string{"privacy", "zkproofs", "cryptocurrency", "innovation"},
			Upvotes:      445,
			Downvotes:    28,
			CommentCount: 93,
			TipAmount:    22.1,
			CreatedAt:    ts("2024-01-19T10:35:00Z"),
			UserVote:     models.VoteUp,
		},
		{
			ID:           "14",
			Author:       users[1],
			Content:      "Layer 2 solutions are scaling Ethereum, but Solana is still faster out of the box! Competition breeds innovation. #Layer2 #Scaling #Performance #Competition",
			MediaURL:     "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=600",
			MediaType:    models.MediaTypeImage,
			Tags:         []string{"layer2", "scaling", "performance", "competition"},
			Upvotes:      334,
			Downvotes:    42,
			CommentCount: 78,
			TipAmount:    16.8,
			CreatedAt:    ts("2024-01-19T08:50:00Z"),
		},
		{
			ID:            "15",
			Author:        users[2],
			Content:       "Digital identity on blockchain is the future! Self-sovereign identity gives users control over their data. #DigitalIdentity #SelfSovereign #Privacy #Blockchain",
			Tags:          []string{"digitalidentity", "selfsovereign", "privacy", "blockchain"},
			Upvotes:       198,
			Downvotes:     8,
			CommentCount:  35,
			TipAmount:     7.9,
			CreatedAt:     ts("2024-01-18T22:15:00Z"),
			HasUserTipped: true,
		},
	}
}
