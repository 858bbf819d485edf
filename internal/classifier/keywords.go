package classifier

// spamKeywords is the fixed phrase dictionary behind the KeywordMatches count.
// The list is deliberately broad and noisy: alongside scam vocabulary it carries
// generic business, marketing and tech terms (and a handful of duplicate
// entries, which count twice). That breadth is a known precision limitation,
// preserved as-is for score compatibility rather than pruned. Matching is
// case-insensitive substring.
var spamKeywords = []string{
	"urgent", "account suspended", "verify now", "click here",
	"limited time", "free gift", "claim now", "congratulations",
	"you won", "lottery", "inheritance", "bank transfer",
	"urgent action", "security alert", "password expired", "login required",
	"unusual activity", "suspicious login", "verify identity", "confirm details",
	"update information", "reactivate account", "billing issue", "payment required",
	"overdue payment", "refund available", "tax refund", "government grant",
	"stimulus check", "covid relief", "medical alert", "prescription ready",
	"insurance claim", "legal notice", "court summons", "arrest warrant",
	"police investigation", "fbi alert", "irs notice", "social security",
	"medicare update", "medicaid alert", "credit score", "loan approval",
	"mortgage rate", "debt relief", "investment opportunity", "crypto alert",
	"bitcoin offer", "stock tip", "real estate", "timeshare",
	"vacation package", "cruise deal", "airline ticket", "hotel booking",
	"car rental", "insurance quote", "home warranty", "security system",
	"alarm monitoring", "utility bill", "cable service", "internet provider",
	"phone plan", "mobile upgrade", "software update", "virus scan",
	"malware removal", "system optimization", "data backup", "cloud storage",
	"email security", "password manager", "vpn service", "antivirus",
	"firewall", "encryption", "two-factor", "biometric",
	"facial recognition", "fingerprint scan", "voice verification", "sms code",
	"email verification", "phone verification", "address verification", "id verification",
	"document upload", "selfie required", "government id", "passport scan",
	"driver license", "social security card", "birth certificate", "marriage license",
	"divorce decree", "death certificate", "will document", "power of attorney",
	"trust document", "estate planning", "tax document", "financial statement",
	"bank statement", "credit report", "insurance policy", "medical record",
	"prescription", "lab result", "x-ray image", "mri scan",
	"ct scan", "ultrasound", "blood test", "urine test",
	"stool test", "biopsy result", "pathology report", "surgery record",
	"discharge summary", "medical bill", "insurance claim", "co-pay",
	"deductible", "out-of-pocket", "premium payment", "policy renewal",
	"coverage change", "benefit update", "claim status", "appeal process",
	"grievance", "complaint", "customer service", "technical support",
	"billing support", "sales inquiry", "product information", "pricing quote",
	"demo request", "trial offer", "subscription", "membership",
	"loyalty program", "rewards points", "cashback offer", "discount code",
	"coupon", "promotion", "sale event", "clearance",
	"limited edition", "exclusive offer", "vip access", "early bird",
	"pre-order", "backorder", "out of stock", "discontinued",
	"recall notice", "safety alert", "product defect", "quality issue",
	"warranty claim", "return request", "refund process", "exchange",
	"replacement", "repair service", "maintenance", "upgrade",
	"installation", "setup assistance", "training", "documentation",
	"user manual", "help guide", "faq", "troubleshooting",
	"error message", "system status", "scheduled maintenance", "planned outage",
	"emergency alert", "weather warning", "traffic update", "road closure",
	"construction", "detour", "accident report", "police activity",
	"fire alert", "medical emergency", "ambulance", "fire truck",
	"police car", "emergency vehicle", "evacuation order", "shelter in place",
	"lockdown", "curfew", "travel advisory", "border closure",
	"quarantine", "isolation", "contact tracing", "exposure notification",
	"testing site", "vaccination", "booster shot", "side effects",
	"allergic reaction", "medical history", "medication list", "allergy list",
	"family history", "genetic testing", "cancer screening", "heart disease",
	"diabetes", "hypertension", "cholesterol", "blood pressure",
	"weight loss", "exercise program", "diet plan", "nutrition",
	"supplements", "vitamins", "herbs", "natural remedies",
	"alternative medicine", "holistic health", "mental health", "depression",
	"anxiety", "stress management", "therapy", "counseling",
	"support group", "crisis hotline", "suicide prevention", "domestic violence",
	"child abuse", "elder abuse", "animal cruelty", "environmental protection",
	"climate change", "recycling", "conservation", "wildlife protection",
	"ocean cleanup", "forest preservation", "air quality", "water quality",
	"soil contamination", "pollution control", "energy efficiency", "renewable energy",
	"solar power", "wind power", "hydroelectric", "geothermal",
	"nuclear power", "fossil fuels", "carbon footprint", "greenhouse gases",
	"ozone layer", "biodiversity", "endangered species", "habitat loss",
	"deforestation", "desertification", "soil erosion", "water scarcity",
	"food security", "agriculture", "farming", "livestock",
	"fisheries", "aquaculture", "genetic engineering", "biotechnology",
	"nanotechnology", "artificial intelligence", "machine learning", "deep learning",
	"neural networks", "robotics", "automation", "cybersecurity",
	"data privacy", "blockchain", "cryptocurrency", "digital currency",
	"central bank", "monetary policy", "inflation", "recession",
	"economic growth", "unemployment", "job market", "career development",
	"skill training", "education", "online learning", "distance education",
	"virtual classroom", "e-learning", "mobile app", "web application",
	"software development", "programming", "coding", "debugging",
	"testing", "quality assurance", "project management", "agile methodology",
	"scrum", "kanban", "lean management", "six sigma",
	"total quality", "continuous improvement", "change management", "organizational development",
	"leadership", "team building", "communication", "collaboration",
	"conflict resolution", "negotiation", "decision making", "problem solving",
	"critical thinking", "creativity", "innovation", "entrepreneurship",
	"startup", "business plan", "market research", "competitive analysis",
	"customer segmentation", "target market", "product development", "brand strategy",
	"marketing campaign", "advertising", "public relations", "social media",
	"content marketing", "email marketing", "search engine optimization", "pay-per-click",
	"affiliate marketing", "influencer marketing", "viral marketing", "guerrilla marketing",
	"ambush marketing", "stealth marketing", "relationship marketing", "loyalty marketing",
	"retention marketing", "acquisition marketing", "conversion optimization", "user experience",
	"customer journey", "touchpoint", "omnichannel", "multichannel",
	"cross-channel", "integrated marketing", "data-driven marketing", "predictive analytics",
	"customer lifetime value", "churn prediction", "market basket analysis", "recommendation engine",
	"personalization", "segmentation", "targeting", "positioning",
	"differentiation", "competitive advantage", "value proposition", "unique selling proposition",
	"brand equity", "brand awareness", "brand loyalty", "brand preference",
	"brand recognition", "brand recall", "brand association", "brand personality",
	"brand image", "brand identity", "corporate identity", "visual identity",
	"logo design", "typography", "color theory", "graphic design",
	"web design", "user interface design", "user experience design", "information architecture",
	"wireframing", "prototyping", "usability testing", "accessibility",
	"responsive design", "mobile-first design", "progressive web app", "single page application",
	"web components", "microservices", "application programming interface", "representational state transfer",
	"graphql", "soap", "javascript object notation", "extensible markup language",
	"hypertext markup language", "cascading style sheets", "ecmascript", "typescript",
	"jsx", "tsx", "react", "vue",
	"angular", "svelte", "ember", "backbone",
	"jquery", "node.js", "express", "koa",
	"hapi", "fastify", "restify", "sails",
	"mongodb", "postgresql", "mysql", "sqlite",
	"redis", "elasticsearch", "cassandra", "docker",
	"kubernetes", "terraform", "ansible", "jenkins",
	"gitlab", "github", "aws", "azure",
	"google cloud", "heroku", "netlify", "vercel",
	"firebase", "machine learning", "artificial intelligence", "deep learning",
	"neural networks", "natural language processing", "computer vision", "speech recognition",
	"text analysis", "sentiment analysis", "topic modeling", "named entity recognition",
	"part-of-speech tagging", "syntax parsing", "semantic analysis", "word embeddings",
	"language models", "transformer", "bert", "gpt",
	"lstm", "cnn", "rnn", "svm",
	"random forest", "gradient boosting", "k-means clustering", "hierarchical clustering",
	"dbscan", "principal component analysis", "singular value decomposition", "factor analysis",
	"regression analysis", "classification", "clustering", "dimensionality reduction",
	"feature engineering", "feature selection", "model selection", "hyperparameter tuning",
	"cross-validation", "overfitting", "underfitting", "bias-variance tradeoff",
	"regularization", "dropout", "batch normalization", "data augmentation",
	"transfer learning", "few-shot learning", "zero-shot learning", "meta-learning",
	"reinforcement learning", "q-learning", "policy gradient", "actor-critic",
	"multi-agent systems", "game theory", "optimization", "genetic algorithms",
	"simulated annealing", "particle swarm optimization", "ant colony optimization", "swarm intelligence",
	"collective intelligence", "crowdsourcing", "human computation", "citizen science",
	"open innovation", "collaborative filtering", "recommendation systems", "search engines",
	"information retrieval", "text mining", "web mining", "data mining",
	"knowledge discovery", "business intelligence", "analytics", "descriptive analytics",
	"diagnostic analytics", "predictive analytics", "prescriptive analytics", "big data",
	"data warehouse", "data lake", "data mart", "data vault",
	"etl", "elt", "data pipeline", "data governance",
	"data quality", "data lineage", "data catalog", "metadata management",
	"master data management", "reference data", "transactional data", "operational data",
	"analytical data", "historical data", "real-time data", "batch processing",
	"stream processing", "event-driven architecture", "microservices", "service-oriented architecture",
	"event sourcing", "cqrs", "domain-driven design", "clean architecture",
	"hexagonal architecture", "onion architecture", "layered architecture", "monolithic architecture",
	"distributed systems", "scalability", "performance", "reliability",
	"availability", "fault tolerance", "resilience", "circuit breaker",
	"bulkhead pattern", "timeout pattern", "retry pattern", "idempotency",
	"eventual consistency", "strong consistency", "acid properties", "base properties",
	"cap theorem", "paxos algorithm", "raft algorithm", "consensus protocols",
	"distributed consensus", "byzantine fault tolerance", "leader election", "load balancing",
	"round-robin", "least connections", "ip hash", "consistent hashing",
	"caching", "redis", "memcached", "in-memory database",
	"distributed cache", "content delivery network", "edge computing", "fog computing",
	"cloud computing", "infrastructure as a service", "platform as a service", "software as a service",
	"function as a service", "container as a service", "database as a service", "storage as a service",
	"network as a service", "security as a service", "monitoring as a service", "logging as a service",
	"backup as a service", "disaster recovery", "business continuity", "high availability",
	"load testing", "stress testing", "performance testing", "security testing",
	"penetration testing", "vulnerability assessment", "risk assessment", "threat modeling",
	"security architecture", "defense in depth", "zero trust", "identity and access management",
	"single sign-on", "multi-factor authentication", "biometric authentication", "public key infrastructure",
	"digital certificates", "ssl/tls", "https", "encryption",
	"symmetric encryption", "asymmetric encryption", "hashing", "salting",
	"key stretching", "key derivation", "random number generation", "cryptographic protocols",
	"secure communication", "vpn", "firewall", "intrusion detection system",
	"intrusion prevention system", "security information", "event management", "security orchestration",
	"automation and response", "threat intelligence", "security awareness", "phishing simulation",
	"social engineering", "social engineering awareness", "security training", "compliance",
	"gdpr", "ccpa", "hipaa", "sox",
	"pci dss", "iso 27001", "nist cybersecurity framework", "cybersecurity maturity model",
	"security controls", "access control", "authentication", "authorization",
	"accounting", "audit logging", "change management", "configuration management",
	"patch management", "vulnerability management", "incident response", "forensics",
	"digital forensics", "computer forensics", "network forensics", "memory forensics",
	"disk forensics", "mobile forensics", "cloud forensics", "iot forensics",
	"internet of things", "smart devices", "wearable technology", "connected cars",
	"smart homes", "industrial internet", "industry 4.0", "digital twin",
	"cyber-physical systems", "edge devices", "gateway devices", "sensor networks",
	"wireless sensor networks", "mesh networks", "ad hoc networks", "mobile ad hoc networks",
	"vehicular ad hoc networks", "flying ad hoc networks", "underwater networks", "satellite networks",
	"cellular networks", "5g networks", "6g networks", "wifi networks",
	"bluetooth networks", "zigbee networks", "lorawan networks", "nb-iot networks",
	"sigfox networks", "low-power wide-area networks", "short-range networks", "personal area networks",
	"local area networks", "wide area networks", "metropolitan area networks", "campus area networks",
	"storage area networks", "virtual private networks", "software-defined networks", "network function virtualization",
	"network slicing", "network automation", "network orchestration", "network monitoring",
	"network performance", "network security", "network management", "network administration",
	"network engineering", "network architecture", "network design", "network topology",
	"network protocols", "tcp/ip", "udp", "http",
	"https", "ftp", "smtp", "pop3",
	"imap", "dns", "dhcp", "arp",
	"icmp", "igmp", "ospf", "bgp",
	"rip", "eigrp", "isis", "mpls",
	"vlan", "vxlan", "gre tunneling", "ipsec",
	"openvpn", "wireguard", "ssh", "telnet",
	"snmp", "syslog", "ntp", "ldap",
	"kerberos", "radius", "tacacs+", "netflow",
	"sflow", "ipfix", "netconf", "restconf",
	"yang", "grpc", "protobuf", "avro",
	"thrift", "json-rpc", "xml-rpc", "soap",
	"graphql", "websocket", "server-sent events", "webhook",
	"api gateway", "service mesh", "sidecar proxy", "envoy proxy",
	"istio", "linkerd", "consul", "etcd",
	"zookeeper", "redis cluster", "mongodb cluster", "postgresql cluster",
	"mysql cluster", "kubernetes cluster", "docker swarm", "mesos",
	"nomad", "terraform", "ansible", "chef",
	"puppet", "saltstack", "jenkins", "gitlab ci",
	"github actions", "circleci", "travis ci", "bamboo",
	"teamcity", "azure devops", "aws codebuild", "google cloud build",
	"heroku pipelines", "netlify build", "vercel build", "firebase hosting",
	"aws s3", "azure blob storage", "google cloud storage", "minio",
	"ceph", "glusterfs", "nfs", "smb",
	"iscsi", "fc", "fcoe", "nvme",
	"nvme-of", "rdma", "roce", "iwarp",
	"dpdk", "ovs-dpdk", "vpp", "fd.io",
	"dpdk-ans", "dpdk-vpp", "dpdk-ovs", "dpdk-spp",
	"dpdk-pktgen", "dpdk-testpmd", "dpdk-l3fwd", "dpdk-l2fwd",
	"dpdk-l3fwd-power", "dpdk-l3fwd-acl", "dpdk-l3fwd-vlan", "dpdk-l3fwd-mpls",
	"dpdk-l3fwd-gre", "dpdk-l3fwd-vxlan", "dpdk-l3fwd-geneve", "dpdk-l3fwd-nvgre",
	"dpdk-l3fwd-vxlan-gpe", "dpdk-l3fwd-mpls-gre", "dpdk-l3fwd-mpls-vxlan", "dpdk-l3fwd-mpls-geneve",
	"dpdk-l3fwd-mpls-nvgre", "dpdk-l3fwd-mpls-vxlan-gpe", "dpdk-l3fwd-mpls-gre-vxlan", "dpdk-l3fwd-mpls-gre-geneve",
	"dpdk-l3fwd-mpls-gre-nvgre", "dpdk-l3fwd-mpls-gre-vxlan-gpe", "dpdk-l3fwd-mpls-vxlan-geneve", "dpdk-l3fwd-mpls-vxlan-nvgre",
	"dpdk-l3fwd-mpls-vxlan-gpe-geneve", "dpdk-l3fwd-mpls-vxlan-gpe-nvgre", "dpdk-l3fwd-mpls-geneve-nvgre", "dpdk-l3fwd-mpls-geneve-vxlan-gpe",
	"dpdk-l3fwd-mpls-nvgre-vxlan-gpe", "dpdk-l3fwd-mpls-vxlan-gpe-geneve-nvgre",
}
