package vocab

var builtin = map[Category][]string{
	Headline:              headlines,
	Bio:                   bios,
	Skill:                 skills,
	Role:                  roles,
	CompanyPrefix:         companyPrefixes,
	CompanySuffix:         companySuffixes,
	ExperienceDescription: experienceDescriptions,
	ProjectName:           projectNames,
	ProjectDescription:    projectDescriptions,
	Institution:           institutions,
	Degree:                degrees,
	Field:                 fields,
}

var headlines = []string{
	"Developer passionate about performance",
	"Specialist in distributed platforms",
	"Engineer focused on scalable products",
	"Tech Lead with experience in global teams",
	"DevOps focused on automation and cloud",
	"Architect of innovative solutions",
	"Frontend expert in UX and accessibility",
	"Backend lover with a passion for fast APIs",
	"Full-stack Developer | Golang | React",
	"Cloud Native Engineer & Kubernetes Enthusiast",
}

var bios = []string{
	"Professional with experience across multiple stacks, shipping high-impact products.",
	"Passionate about technology, innovation and scaling challenges.",
	"Backend specialist with strong DevOps and cloud background.",
	"Focused on code quality, automation and agile culture.",
	"Open source enthusiast and active member of tech communities.",
	"International experience on global projects with distributed teams.",
	"Turning ideas into robust digital solutions.",
	"Team mentor and multiplier of technical knowledge.",
	"Worked at startups and large companies, always looking to innovate.",
	"Full-stack developer who cares about performance and UX.",
	"Engineer focused on resilience and highly available systems.",
	"Software architect biased towards simple, efficient solutions.",
	"Explorer of new technology, currently focused on generative AI.",
	"Specialist in legacy modernization and cloud migration.",
}

var skills = []string{
	// languages
	"Go", "Python", "TypeScript", "React", "Docker", "Kubernetes",
	"PostgreSQL", "Redis", "AWS", "Terraform", "GraphQL", "gRPC",
	"Node.js", "Vue.js", "Angular", "Java", "C#", "Ruby", "PHP",
	"MongoDB", "Elasticsearch", "RabbitMQ", "Svelte", "Next.js", "Django",
	"Rust", "Kotlin", "Swift", "C++", "Elixir", "Scala", "Dart", "Haskell",
	// frameworks
	"FastAPI", "Spring Boot", "Laravel", "NestJS", "TailwindCSS", "Bootstrap",
	"Flutter", "React Native", ".NET Core", "Flask", "Express",
	// infra and tools
	"Ansible", "Jenkins", "GitHub Actions", "Prometheus", "Grafana", "Linux",
	"Nginx", "Apache Kafka", "Cassandra", "DynamoDB", "Azure", "GCP",
	"Git", "Jira", "Figma", "Datadog", "Splunk",
	// data and ai
	"Pandas", "NumPy", "PyTorch", "TensorFlow", "OpenAI API", "Scikit-learn",
}

var roles = []string{
	"Backend Engineer", "Full-Stack Developer", "Tech Lead", "DevOps Engineer",
	"Frontend Developer", "Cloud Architect", "QA Engineer", "Product Owner",
	"Site Reliability Engineer (SRE)", "Data Engineer", "Mobile Developer",
	"Security Engineer", "Solutions Architect", "Staff Engineer", "Engineering Manager",
}

var companyPrefixes = []string{
	"Acme", "Globex", "Initech", "Stark", "Umbrella",
	"Wayne", "Cyberdyne", "Massive", "Hooli", "Pied Piper",
}

var companySuffixes = []string{"Labs", "Inc", "Corp", "Systems", "Tech"}

var experienceDescriptions = []string{
	"Built scalable services and REST APIs.",
	"Technical leadership in cross-functional squads.",
	"Implemented CI/CD pipelines and deployment automation.",
	"Migrated monolithic systems to a microservice architecture.",
	"Tuned queries and modelled relational and NoSQL databases.",
	"Mentored junior developers and ran code reviews.",
	"Integrated systems with cloud providers (AWS, GCP, Azure).",
	"Wrote automated tests and practiced TDD.",
	"Took part in architecture decisions and technology choices.",
	"Worked on agile projects with continuous delivery.",
	"Cut infrastructure costs through resource optimization.",
	"Rolled out observability and centralized logging.",
	"Built responsive and accessible interfaces.",
}

var projectNames = []string{
	"Atlas", "Zephyr", "Aurora", "Nebula", "Pulse", "Vertex", "Quark", "Solstice",
	"Orion", "Helix", "Nimbus", "Photon", "Vortex", "Echo", "Blaze", "Nova",
	"Chimera", "Odyssey", "Titan", "Chronos", "Aigis", "Hyperion", "Zenith", "Omega",
	"Spectre", "Phantom", "Mirage", "Equinox", "Polaris", "Sirius",
}

var projectDescriptions = []string{
	"Innovative solutions for the financial market (FinTech).",
	"Business process automation platform.",
	"Recommendation engine built on machine learning.",
	"Real-time monitoring tool for web applications.",
	"High-performance API for integrating legacy systems.",
	"Mobile app for collaborative task management.",
	"Analytics dashboard with interactive data visualization.",
	"Infrastructure as code for scalable environments.",
	"Chatbot integrated with multiple support channels.",
	"Robust authentication and authorization for microservices.",
	"E-commerce platform built for heavy traffic.",
	"IoT solution for monitoring industrial sensors.",
	"Services marketplace with integrated digital payments.",
	"Telemedicine system compliant with data protection rules.",
	"Corporate social network for remote team engagement.",
}

var institutions = []string{
	"USP", "UNICAMP", "UFPE", "PUC-Rio", "UFRJ", "UFMG", "UTFPR",
	"ITA", "UFRGS", "UNB", "FIAP", "Harvard", "MIT", "Stanford",
}

var degrees = []string{"Bachelor", "Master", "Doctorate", "Technologist", "MBA"}

var fields = []string{
	"Computer Science", "Software Engineering", "Information Systems",
	"Electrical Engineering", "Systems Analysis", "Computational Mathematics",
}
